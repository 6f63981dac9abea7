package usecase

import (
	"context"
	"fmt"
	"time"

	"petconnect/internal/data/entity"
	"petconnect/internal/data/repository"
	"petconnect/internal/dto/request"
	"petconnect/internal/dto/response"
	"petconnect/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	Create(ctx context.Context, actor entity.Actor, req request.CreateProduct) (*response.Product, error)
	GetByID(ctx context.Context, id string) (*response.Product, error)
	List(ctx context.Context, req request.ListProducts) (*response.Paginated[response.Product], error)
	Update(ctx context.Context, actor entity.Actor, id string, req request.UpdateProduct) (*response.Product, error)
	Delete(ctx context.Context, actor entity.Actor, id string) error

	CreateCategory(ctx context.Context, req request.CreateCategory) (*response.Category, error)
	ListCategories(ctx context.Context) ([]response.Category, error)
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) sellerProfile(ctx context.Context, actor entity.Actor) (*entity.Seller, error) {
	seller, err := s.repo.Seller.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, fmt.Errorf("seller profile not found")
	}
	return seller, nil
}

func (s *productService) Create(ctx context.Context, actor entity.Actor, req request.CreateProduct) (*response.Product, error) {
	seller, err := s.sellerProfile(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !seller.IsApproved {
		return nil, fmt.Errorf("seller is not approved")
	}

	categoryID, err := utils.ParseUUID(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id")
	}
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	now := time.Now().UTC()
	product := &entity.Product{
		Base:        entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		SellerID:    seller.ID,
		CategoryID:  category.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("seller_id", seller.ID.String()),
	)

	out := response.FromProduct(product)
	return &out, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*response.Product, error) {
	productID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, fmt.Errorf("product not found")
	}

	out := response.FromProduct(product)
	summary, err := s.repo.Review.SummaryForProduct(ctx, product.ID)
	if err != nil {
		// Rating enrichment is best effort, the product itself is the answer.
		s.log.Warn("Failed to load rating summary",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
	} else if summary != nil {
		out.AvgRating = summary.Average
		out.ReviewCount = summary.Count
	}
	return &out, nil
}

func (s *productService) List(ctx context.Context, req request.ListProducts) (*response.Paginated[response.Product], error) {
	req.Normalize()

	filter := repository.ProductFilter{
		Search:   req.Search,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	}
	if req.SellerID != nil {
		id, err := utils.ParseUUID(*req.SellerID)
		if err != nil {
			return nil, fmt.Errorf("invalid seller id")
		}
		filter.SellerID = &id
	}
	if req.CategoryID != nil {
		id, err := utils.ParseUUID(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id")
		}
		filter.CategoryID = &id
	}

	products, err := s.repo.Product.Find(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Product.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := response.NewPaginated(response.FromProducts(products), req.Page, req.PerPage, total)
	return &out, nil
}

func (s *productService) ownedProduct(ctx context.Context, actor entity.Actor, id string) (*entity.Product, error) {
	productID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, fmt.Errorf("product not found")
	}

	if actor.Role == entity.RoleAdmin {
		return product, nil
	}

	seller, err := s.sellerProfile(ctx, actor)
	if err != nil {
		return nil, err
	}
	if seller.ID != product.SellerID {
		return nil, fmt.Errorf("access denied")
	}

	return product, nil
}

func (s *productService) Update(ctx context.Context, actor entity.Actor, id string, req request.UpdateProduct) (*response.Product, error) {
	product, err := s.ownedProduct(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	categoryID, err := utils.ParseUUID(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id")
	}
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	product.CategoryID = category.ID
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	product.ImageURL = req.ImageURL

	if err := s.repo.Product.Update(ctx, product); err != nil {
		return nil, err
	}

	out := response.FromProduct(product)
	return &out, nil
}

func (s *productService) Delete(ctx context.Context, actor entity.Actor, id string) error {
	product, err := s.ownedProduct(ctx, actor, id)
	if err != nil {
		return err
	}

	return s.repo.Product.Deactivate(ctx, product.ID)
}

func (s *productService) CreateCategory(ctx context.Context, req request.CreateCategory) (*response.Category, error) {
	now := time.Now().UTC()
	category := &entity.ProductCategory{
		Base:        entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		return nil, err
	}

	out := response.FromCategory(category)
	return &out, nil
}

func (s *productService) ListCategories(ctx context.Context) ([]response.Category, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return response.FromCategories(categories), nil
}

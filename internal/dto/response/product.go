package response

import (
	"time"

	"petconnect/internal/data/entity"
)

type Product struct {
	ID          string    `json:"id"`
	SellerID    string    `json:"sellerId"`
	CategoryID  string    `json:"categoryId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	AvgRating   float64   `json:"avgRating"`
	ReviewCount int64     `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func FromProduct(product *entity.Product) Product {
	return Product{
		ID:          product.ID.String(),
		SellerID:    product.SellerID.String(),
		CategoryID:  product.CategoryID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func FromProducts(products []*entity.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, FromProduct(product))
	}
	return out
}

func FromCategory(category *entity.ProductCategory) Category {
	return Category{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
	}
}

func FromCategories(categories []*entity.ProductCategory) []Category {
	out := make([]Category, 0, len(categories))
	for _, category := range categories {
		out = append(out, FromCategory(category))
	}
	return out
}

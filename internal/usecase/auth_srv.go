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

type AuthService interface {
	Register(ctx context.Context, req request.Register) (*response.Auth, error)
	Login(ctx context.Context, req request.Login) (*response.Auth, error)
	Refresh(ctx context.Context, req request.Refresh) (*response.TokenPair, error)
	Logout(ctx context.Context, req request.Refresh) error
}

type authService struct {
	repo *repository.Repository
	jwt  utils.JWTConfig
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, jwt utils.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		jwt:  jwt,
		log:  log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req request.Register) (*response.Auth, error) {
	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if role == entity.RoleAdmin {
		return nil, fmt.Errorf("admin accounts cannot self-register")
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	var phone *string
	if req.Phone != "" {
		phone = &req.Phone
	}
	user := &entity.User{
		Base:         entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        phone,
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.createProfile(ctx, user, req, now); err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)),
	)

	return s.issueAuth(ctx, user)
}

// createProfile attaches the role-specific profile row. Sellers and
// walkers start unapproved and stay invisible until an admin approves
// them.
func (s *authService) createProfile(ctx context.Context, user *entity.User, req request.Register, now time.Time) error {
	base := entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now}

	switch user.Role {
	case entity.RoleCustomer:
		return s.repo.Customer.Create(ctx, &entity.Customer{
			Base:   base,
			UserID: user.ID,
			Phone:  user.Phone,
		})
	case entity.RoleSeller:
		return s.repo.Seller.Create(ctx, &entity.Seller{
			Base:      base,
			UserID:    user.ID,
			StoreName: req.StoreName,
		})
	case entity.RoleWalker:
		return s.repo.Walker.Create(ctx, &entity.Walker{
			Base:            base,
			UserID:          user.ID,
			Name:            user.Name,
			Phone:           user.Phone,
			ExperienceYears: req.ExperienceYears,
			PricePerHour:    req.PricePerHour,
			IsAvailable:     true,
		})
	default:
		return fmt.Errorf("unknown role %q", user.Role)
	}
}

func (s *authService) Login(ctx context.Context, req request.Login) (*response.Auth, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials")
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account is disabled")
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.issueAuth(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, req request.Refresh) (*response.TokenPair, error) {
	session, err := s.repo.Session.FindValidByHash(ctx, utils.HashRefreshToken(req.RefreshToken))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("invalid refresh token")
	}

	// Rotate: the presented token is burned whether or not issuing the
	// replacement succeeds.
	if err := s.repo.Session.Revoke(ctx, session.ID); err != nil {
		return nil, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return pair, nil
}

func (s *authService) Logout(ctx context.Context, req request.Refresh) error {
	session, err := s.repo.Session.FindValidByHash(ctx, utils.HashRefreshToken(req.RefreshToken))
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("invalid refresh token")
	}

	return s.repo.Session.Revoke(ctx, session.ID)
}

func (s *authService) issueTokens(ctx context.Context, user *entity.User) (*response.TokenPair, error) {
	access, err := utils.NewAccessToken(s.jwt.Secret, user.ID, string(user.Role), s.jwt.ExpiryMinutes)
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err))
		return nil, err
	}

	refresh, err := utils.NewRefreshToken(s.jwt.RefreshExpiryDays)
	if err != nil {
		s.log.Error("Failed to generate refresh token", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: now},
		UserID:     user.ID,
		TokenHash:  utils.HashRefreshToken(refresh.Raw),
		ExpiresAt:  refresh.Exp,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return &response.TokenPair{
		AccessToken:  access.Token,
		RefreshToken: refresh.Raw,
		ExpiresIn:    int64(time.Until(access.Exp).Seconds()),
	}, nil
}

func (s *authService) issueAuth(ctx context.Context, user *entity.User) (*response.Auth, error) {
	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &response.Auth{
		User:         response.FromUser(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

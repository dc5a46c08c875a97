package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/config"
	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/model"
	"github.com/monsdar/MiniGameArchive/internal/repository"
	"github.com/monsdar/MiniGameArchive/pkg/jwt"
)

// ── auth errors ──

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountNotFound    = errors.New("account not found")
)

// AuthService handles registration, login and the token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	// Logout blacklists the token until its natural expiry.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	Me(ctx context.Context, accountID string) (*dto.AccountResponse, error)
}

type authService struct {
	cfg       *config.Config
	repo      *repository.Repository
	blacklist TokenBlacklist
	jwtMgr    *jwt.Manager
	logger    *zap.Logger
}

// NewAuthService creates an AuthService instance.
func NewAuthService(cfg *config.Config, repo *repository.Repository, blacklist TokenBlacklist, jwtMgr *jwt.Manager, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, blacklist: blacklist, jwtMgr: jwtMgr, logger: logger}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.Account.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("checking email failed", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password failed", zap.Error(err))
		return nil, err
	}

	account := &model.Account{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleCoach,
	}
	if err := s.repo.Account.Create(ctx, account); err != nil {
		s.logger.Error("creating account failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("account registered", zap.String("account_id", account.AccountID))
	return s.issueTokens(account)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.repo.Account.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("loading account failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(account)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidToken
	}

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("checking token blacklist failed", zap.Error(err))
		return nil, err
	}
	if blacklisted {
		return nil, ErrInvalidToken
	}

	account, err := s.repo.Account.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		s.logger.Error("loading account failed", zap.Error(err))
		return nil, err
	}

	// One-shot refresh: the used token is retired immediately.
	if claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if ttl > 0 {
			if err := s.blacklist.BlacklistToken(ctx, claims.ID, ttl); err != nil {
				s.logger.Warn("blacklisting used refresh token failed", zap.Error(err))
			}
		}
	}

	return s.issueTokens(account)
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.BlacklistToken(ctx, tokenID, ttl); err != nil {
		s.logger.Error("blacklisting token failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Me(ctx context.Context, accountID string) (*dto.AccountResponse, error) {
	account, err := s.repo.Account.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		s.logger.Error("loading account failed", zap.Error(err))
		return nil, err
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

func (s *authService) issueTokens(account *model.Account) (*dto.TokenResponse, error) {
	access, err := s.jwtMgr.GenerateAccessToken(account.AccountID, account.Role)
	if err != nil {
		s.logger.Error("generating access token failed", zap.Error(err))
		return nil, err
	}
	refresh, err := s.jwtMgr.GenerateRefreshToken(account.AccountID, account.Role)
	if err != nil {
		s.logger.Error("generating refresh token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		Account:      toAccountResponse(account),
	}, nil
}

func toAccountResponse(a *model.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:    a.AccountID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}

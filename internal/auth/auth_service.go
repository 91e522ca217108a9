package auth

import (
	"context"
	"os"
	"strings"
	"time"

	autherrors "github.com/VaibhavBaliyan/hirenest/internal/auth/errors"
	"github.com/VaibhavBaliyan/hirenest/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("register requested", zap.String("email", req.Email), zap.String("role", req.Role))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("hash password failed", zap.Error(err))
		return AuthResponse{}, err
	}

	u := &User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     req.Role,
		Phone:    req.Phone,
	}

	// Fast-path pre-check; the unique index settles concurrent registrations.
	if _, err := s.repo.FindByEmail(ctx, u.Email); err == nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	if err := s.repo.Create(ctx, u); err != nil {
		l.Warn("register persist failed", zap.String("email", u.Email), zap.Error(err))
		return AuthResponse{}, mapRepositoryError(err)
	}

	token, err := s.generateToken(u.ID.String(), u.Role)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	l.Info("register success", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return mapToResponse(u, token), nil
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		l.Warn("login password mismatch", zap.String("user_id", u.ID.String()))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(u.ID.String(), u.Role)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	l.Info("login success", zap.String("user_id", u.ID.String()))
	return mapToResponse(u, token), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return AuthResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(u, ""), nil
}

func (s *service) generateToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToResponse(u *User, token string) AuthResponse {
	return AuthResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Phone: u.Phone,
		Token: token,
	}
}

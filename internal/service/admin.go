package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

const (
	MinPasswordLength = 12
	maxPasswordBytes  = 72

	adminTokenType = "admin"
)

type AdminService interface {
	EnsureInitialAdmin(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*AdminToken, error)
	Authenticate(token string) (string, error)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (*AdminToken, error)
}

type AdminToken struct {
	Value     string
	Username  string
	ExpiresAt time.Time
}

type adminRepo interface {
	Save(ctx context.Context, user *entity.AdminUser) error
	FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Count(ctx context.Context) (int, error)
}

type adminClaims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

type adminService struct {
	logger *slog.Logger

	adminRepo adminRepo
	secretKey []byte
	tokenTTL  time.Duration

	now func() time.Time
}

func NewAdminService(logger *slog.Logger, adminRepo adminRepo, secretKey string, tokenTTL time.Duration) AdminService {
	return &adminService{
		logger:    logger.With("component", "admin_service"),
		adminRepo: adminRepo,
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// EnsureInitialAdmin creates the first admin when none exists yet.
func (that *adminService) EnsureInitialAdmin(ctx context.Context, username, password string) error {
	count, err := that.adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}

	if count > 0 {
		return nil
	}

	if username == "" || password == "" {
		that.logger.Warn("no admin users and no initial credentials configured")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = that.adminRepo.Save(ctx, &entity.AdminUser{Username: username, PasswordHash: string(hash)}); err != nil {
		return fmt.Errorf("failed to save initial admin: %w", err)
	}

	that.logger.Info("initial admin created", "username", username)

	return nil
}

func (that *adminService) Login(ctx context.Context, username, password string) (*AdminToken, error) {
	user, err := that.verify(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return that.generateToken(user.Username)
}

func (that *adminService) verify(ctx context.Context, username, password string) (*entity.AdminUser, error) {
	user, err := that.adminRepo.FindByUsername(ctx, username)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin user: %w", err)
	}

	if user.Disabled {
		return nil, apperror.ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}

func (that *adminService) generateToken(username string) (*AdminToken, error) {
	now := that.now()
	expiresAt := now.Add(that.tokenTTL)

	claims := adminClaims{
		Type: adminTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(that.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AdminToken{Value: tokenString, Username: username, ExpiresAt: expiresAt}, nil
}

// Authenticate validates an admin token and returns the username it was issued to.
func (that *adminService) Authenticate(tokenString string) (string, error) {
	var claims adminClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return that.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(that.now))
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrUnauthorized, err)
	}

	if claims.Type != adminTokenType || claims.Subject == "" {
		return "", apperror.ErrUnauthorized
	}

	return claims.Subject, nil
}

func (that *adminService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (*AdminToken, error) {
	if len([]rune(newPassword)) < MinPasswordLength {
		return nil, fmt.Errorf("%w: new password must be at least %d characters", apperror.ErrValidation, MinPasswordLength)
	}

	// bcrypt only looks at the first 72 bytes
	if len(newPassword) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: new password must be at most %d bytes", apperror.ErrValidation, maxPasswordBytes)
	}

	user, err := that.verify(ctx, username, currentPassword)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err = that.adminRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	that.logger.Info("admin password changed", "username", username)

	return that.generateToken(user.Username)
}

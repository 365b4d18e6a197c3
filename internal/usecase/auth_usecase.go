package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
	"github.com/cassioviller/ViajeyPlanner/internal/domain/repository"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/validator"
	"github.com/cassioviller/ViajeyPlanner/internal/usecase/dto"
)

// AuthUseCase handles registration, login and profile lookup. Tokens are
// stateless HS256 JWTs carrying the user id as subject.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	logger    *zap.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	logger *zap.Logger,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		logger:    logger,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register creates an account and returns a fresh token so clients can skip
// a separate login round trip.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		uc.logger.Error("Failed to check user existence", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, errors.ErrUserExists
	}

	user := &domain.User{
		Email:    req.Email,
		Username: req.Username,
		Name:     optionalString(req.Name),
	}
	if err := user.SetPassword(req.Password); err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.logger.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	token, err := uc.generateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	uc.logger.Info("User registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password produce the same error so accounts cannot be enumerated.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == errors.ErrUserNotFound {
			return nil, errors.ErrInvalidCredentials
		}
		uc.logger.Error("Failed to load user by email", zap.Error(err))
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := uc.generateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// GetProfile returns the account behind an authenticated request.
func (uc *AuthUseCase) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// ParseToken validates a signed token and extracts the user id. Used by the
// HTTP auth middleware.
func (uc *AuthUseCase) ParseToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrUnauthorized
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.ErrUnauthorized
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, errors.ErrUnauthorized
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, errors.ErrUnauthorized
	}
	return userID, nil
}

func (uc *AuthUseCase) generateToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(uc.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.jwtSecret)
}

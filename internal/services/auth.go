package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/upgradehq/upgrade-backend/internal/errs"
	"github.com/upgradehq/upgrade-backend/internal/models"
	"github.com/upgradehq/upgrade-backend/internal/utils"
	"gorm.io/gorm"
)

// ErrInvalidCredentials maps to 401 rather than the engine taxonomy; a bad
// password is neither a validation nor a not-found condition we want to
// reveal.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthRequest struct {
	GoogleID string `json:"google_id" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Avatar   string `json:"avatar"`
}

type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	if !utils.IsValidPassword(req.Password) {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", errs.ErrValidation)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: user with email %s", errs.ErrConflict, email)
	}

	user := models.User{
		Email:    email,
		Password: req.Password, // hashed by the model hook
		Name:     strings.TrimSpace(req.Name),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user with email %s", errs.ErrConflict, email)
		}
		return nil, fmt.Errorf("failed to create user: %v", err)
	}

	return s.respond(user)
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.respond(user)
}

// GoogleAuth signs a Google identity in, linking it to an existing account
// with the same email or creating a fresh one.
func (s *AuthService) GoogleAuth(ctx context.Context, req GoogleAuthRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := s.db.WithContext(ctx).Where("google_id = ?", req.GoogleID).First(&user).Error
	if err == nil {
		return s.respond(user)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up google account: %v", err)
	}

	err = s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		// Link the Google identity to the existing account.
		updates := map[string]interface{}{"google_id": req.GoogleID}
		if req.Avatar != "" {
			updates["avatar"] = req.Avatar
		}
		if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to link google account: %v", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Email:    email,
			Name:     strings.TrimSpace(req.Name),
			Avatar:   req.Avatar,
			GoogleID: &req.GoogleID,
		}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %v", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up user: %v", err)
	}

	return s.respond(user)
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", errs.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to fetch user %d: %v", userID, err)
	}
	return &user, nil
}

func (s *AuthService) respond(user models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %v", err)
	}
	return &AuthResponse{User: user, Token: token}, nil
}

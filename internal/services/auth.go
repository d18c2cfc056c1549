package services

import (
	"errors"
	"strings"
	"time"

	"github.com/RasuriVIGNESH/peerconnect/internal/config"
	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/internal/utils"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles registration, login and current-user lookup.
type AuthService struct {
	db  *gorm.DB
	cfg *config.JWTConfig
}

func NewAuthService(db *gorm.DB, cfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates a new user account and returns a signed token.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewConflict("an account with this email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       uuid.New().String(),
		Email:    email,
		Password: hash,
		Name:     strings.TrimSpace(req.Name),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name, s.cfg.ExpireHour)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: &user}, nil
}

// Login verifies credentials and returns a signed token. Wrong email and
// wrong password produce the same error.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid email or password")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, response.NewForbidden("account is deactivated")
	}
	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, response.NewUnauthorized("invalid email or password")
	}

	now := time.Now()
	s.db.Model(&user).Update("last_login", now)
	user.LastLogin = &now

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name, s.cfg.ExpireHour)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: &user}, nil
}

// GetCurrentUser returns the authenticated user's profile.
func (s *AuthService) GetCurrentUser(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

type UpdateProfileRequest struct {
	Name               *string `json:"name"`
	Bio                *string `json:"bio"`
	Avatar             *string `json:"avatar"`
	GithubProfile      *string `json:"github_profile"`
	LinkedinProfile    *string `json:"linkedin_profile"`
	AvailabilityStatus *string `json:"availability_status"`
}

// UpdateProfile modifies the caller's own profile fields.
func (s *AuthService) UpdateProfile(userID string, req *UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetCurrentUser(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.NewBadRequest("name cannot be blank")
		}
		updates["name"] = name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.GithubProfile != nil {
		updates["github_profile"] = *req.GithubProfile
	}
	if req.LinkedinProfile != nil {
		updates["linkedin_profile"] = *req.LinkedinProfile
	}
	if req.AvailabilityStatus != nil {
		switch *req.AvailabilityStatus {
		case "AVAILABLE", "BUSY", "NOT_AVAILABLE":
			updates["availability_status"] = *req.AvailabilityStatus
		default:
			return nil, response.NewBadRequest("invalid availability status")
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetCurrentUser(userID)
}

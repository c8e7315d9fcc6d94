package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/apperr"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/repository"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/utils"
)

// ErrInvalidCredentials is deliberately indistinct: the caller learns
// nothing about whether the email exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Register(name, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if count > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Internal(err)
	}
	return user, nil
}

// Login verifies credentials and refuses a session for blocked accounts,
// returning the stored block reason instead of a token.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if user.IsBlocked {
		return "", nil, apperr.AccountBlocked(user.BlockedReason)
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(userID uint, name string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if err := s.userRepo.Update(userID, map[string]any{"name": name}); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.GetProfile(userID)
}

func (s *AuthService) SaveAvatar(userID uint, data []byte, contentType string) error {
	if len(data) > 10*1024*1024 {
		return apperr.Validation("file too large")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return apperr.Validation("invalid image format")
	}
	if err := s.userRepo.SaveAvatar(userID, data, contentType); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *AuthService) GetAvatar(userID uint) ([]byte, string, error) {
	user, err := s.userRepo.GetAvatar(userID)
	if err != nil || len(user.Avatar) == 0 {
		return nil, "", apperr.NotFound("avatar not found")
	}
	return user.Avatar, user.AvatarType, nil
}

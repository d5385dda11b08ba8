package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Register creates a password user. Duplicate emails are rejected.
func (s *AuthService) Register(name, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		Role:     "customer",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password and issues a token.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if user.Password == "" {
		// federated-only account, no password to compare
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// ExchangeFederated takes a verified provider profile and returns an app
// token, creating or linking the local account as needed. Matching order:
// provider uid first, then email (which links the uid onto an existing
// password account).
func (s *AuthService) ExchangeFederated(name, email, providerUID string) (string, *entity.User, error) {
	if providerUID == "" || email == "" {
		return "", nil, errors.New("provider uid and email are required")
	}
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByProviderUID(providerUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.userRepo.FindByEmail(email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = &entity.User{
				Email:       email,
				Name:        strings.TrimSpace(name),
				Role:        "customer",
				ProviderUID: providerUID,
			}
			if err := s.userRepo.Create(user); err != nil {
				return "", nil, err
			}
		} else if err != nil {
			return "", nil, err
		} else {
			user.ProviderUID = providerUID
			if user.Name == "" {
				user.Name = strings.TrimSpace(name)
			}
			if err := s.userRepo.Update(user); err != nil {
				return "", nil, err
			}
		}
	} else if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

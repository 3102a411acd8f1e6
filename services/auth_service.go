package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Sebastien-besse/ZakFitBack/models"
	"github.com/Sebastien-besse/ZakFitBack/repositories"
	"github.com/Sebastien-besse/ZakFitBack/utils"
)

const minPasswordLength = 8

type AuthService struct {
	users     repositories.UserRepository
	jwtSecret string
}

func NewAuthService(users repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	DateOfBirth     time.Time
	Height          int
	Weight          int
	HealthObjective string
	Diet            string
}

func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if len(input.Password) < minPasswordLength {
		return nil, badRequestf("password must be at least %d characters", minPasswordLength)
	}
	if input.Height < 0 || input.Weight < 0 {
		return nil, badRequestf("height and weight cannot be negative")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		Password:        hashed,
		DateOfBirth:     input.DateOfBirth,
		Height:          input.Height,
		Weight:          input.Weight,
		HealthObjective: input.HealthObjective,
		Diet:            input.Diet,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, badRequestf("email already registered")
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
		}
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	}
	return utils.GenerateToken(s.jwtSecret, user.ID)
}

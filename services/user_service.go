package services

import (
	"time"

	"github.com/Sebastien-besse/ZakFitBack/models"
	"github.com/Sebastien-besse/ZakFitBack/repositories"
	"github.com/Sebastien-besse/ZakFitBack/utils"
)

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// Profile is the user as returned to its owner, with derived stats.
type Profile struct {
	ID              uint      `json:"id"`
	FirstName       string    `json:"firstname"`
	LastName        string    `json:"lastname"`
	Email           string    `json:"email"`
	DateOfBirth     time.Time `json:"date_of_birth"`
	Age             int       `json:"age"`
	Height          int       `json:"height"`
	Weight          int       `json:"weight"`
	HealthObjective string    `json:"health_objective"`
	Diet            string    `json:"diet"`
	BMI             float64   `json:"bmi,omitempty"`
	BMICategory     string    `json:"bmi_category,omitempty"`
}

func (s *UserService) Profile(userID uint) (*Profile, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}

	p := &Profile{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		DateOfBirth:     user.DateOfBirth,
		Height:          user.Height,
		Weight:          user.Weight,
		HealthObjective: user.HealthObjective,
		Diet:            user.Diet,
	}
	if !user.DateOfBirth.IsZero() {
		p.Age = utils.CalculateAge(user.DateOfBirth)
	}
	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		p.BMI = bmi
		p.BMICategory = utils.BMICategory(bmi)
	}
	return p, nil
}

// ProfileUpdate carries a partial update; nil fields are left unchanged.
type ProfileUpdate struct {
	FirstName       *string
	LastName        *string
	DateOfBirth     *time.Time
	Height          *int
	Weight          *int
	HealthObjective *string
	Diet            *string
}

func (s *UserService) UpdateProfile(userID uint, input ProfileUpdate) (*Profile, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}

	if input.Height != nil && *input.Height <= 0 {
		return nil, badRequestf("height must be positive")
	}
	if input.Weight != nil && *input.Weight <= 0 {
		return nil, badRequestf("weight must be positive")
	}

	applyUserUpdate(user, input)
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return s.Profile(userID)
}

func applyUserUpdate(user *models.User, input ProfileUpdate) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = *input.DateOfBirth
	}
	if input.Height != nil {
		user.Height = *input.Height
	}
	if input.Weight != nil {
		user.Weight = *input.Weight
	}
	if input.HealthObjective != nil {
		user.HealthObjective = *input.HealthObjective
	}
	if input.Diet != nil {
		user.Diet = *input.Diet
	}
}

func (s *UserService) Delete(userID uint) error {
	if _, err := s.users.FindByID(userID); err != nil {
		return notFoundOr(err, "user not found")
	}
	return s.users.Delete(userID)
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sebastien-besse/ZakFitBack/services"
)

type UserController struct {
	auth  *services.AuthService
	users *services.UserService
}

func NewUserController(auth *services.AuthService, users *services.UserService) *UserController {
	return &UserController{auth: auth, users: users}
}

type registerRequest struct {
	FirstName       string `json:"firstname" binding:"required"`
	LastName        string `json:"lastname" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	DateOfBirth     string `json:"date_of_birth"` // YYYY-MM-DD
	Height          int    `json:"height"`
	Weight          int    `json:"weight"`
	HealthObjective string `json:"health_objective"`
	Diet            string `json:"diet"`
}

func (ctl *UserController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dob time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_of_birth, use YYYY-MM-DD"})
			return
		}
		dob = parsed
	}

	user, err := ctl.auth.Register(services.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		DateOfBirth:     dob,
		Height:          req.Height,
		Weight:          req.Weight,
		HealthObjective: req.HealthObjective,
		Diet:            req.Diet,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *UserController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (ctl *UserController) Profile(c *gin.Context) {
	profile, err := ctl.users.Profile(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type updateProfileRequest struct {
	FirstName       *string `json:"firstname"`
	LastName        *string `json:"lastname"`
	DateOfBirth     *string `json:"date_of_birth"` // YYYY-MM-DD
	Height          *int    `json:"height"`
	Weight          *int    `json:"weight"`
	HealthObjective *string `json:"health_objective"`
	Diet            *string `json:"diet"`
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.ProfileUpdate{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Height:          req.Height,
		Weight:          req.Weight,
		HealthObjective: req.HealthObjective,
		Diet:            req.Diet,
	}
	if req.DateOfBirth != nil {
		parsed, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_of_birth, use YYYY-MM-DD"})
			return
		}
		input.DateOfBirth = &parsed
	}

	profile, err := ctl.users.UpdateProfile(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctl *UserController) Delete(c *gin.Context) {
	if err := ctl.users.Delete(currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

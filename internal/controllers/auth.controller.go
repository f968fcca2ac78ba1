package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nutriclinic/internal/middleware"
	"nutriclinic/internal/models"
	"nutriclinic/internal/repository"
	"nutriclinic/internal/utils"
)

type AuthController struct {
	userRepo *repository.UserRepository
}

func NewAuthController(userRepo *repository.UserRepository) *AuthController {
	return &AuthController{userRepo: userRepo}
}

type registerRequest struct {
	ClinicName string `json:"clinic_name" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a clinic and its owner account
// @Description Create a new tenant with its first staff user
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body registerRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "Clinic registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to register clinic"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register clinic",
			"error":   err.Error(),
		})
		return
	}

	tenant := models.Tenant{
		Name: req.ClinicName,
		Slug: slugify(req.ClinicName),
	}
	if err := ac.userRepo.CreateTenant(&tenant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register clinic",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		TenantID: tenant.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     "owner",
	}
	if err := ac.userRepo.CreateUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Clinic registered successfully",
		"data": gin.H{
			"tenant_id": tenant.ID,
			"user_id":   user.ID,
		},
	})
}

// Login godoc
// @Summary Log in a staff user
// @Description Authenticate with email and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := ac.userRepo.GetUserByEmail(req.Email)
	if err != nil || !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Email or password is incorrect",
		})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.TenantID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to issue token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data": gin.H{
			"token":     token,
			"user_id":   user.ID,
			"tenant_id": user.TenantID,
			"name":      user.Name,
		},
	})
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

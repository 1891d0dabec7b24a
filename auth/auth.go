package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gowty08/Animecosplay/models"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		var existing models.User
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to check email"})
			return
		}

		user := models.User{
			ID:      uuid.NewString(),
			Name:    input.Name,
			Email:   email,
			Phone:   input.Phone,
			Address: input.Address,
		}
		if err := user.SetPassword(input.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
			return
		}

		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
			return
		}

		token, err := IssueToken(user.ID, user.IsAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"access_token": token, "user": user})
	}
}

// POST /api/auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).
			First(&user).Error
		if err != nil || !user.CheckPassword(input.Password) {
			// Same response for unknown email and wrong password.
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}

		token, err := IssueToken(user.ID, user.IsAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": token, "user": user})
	}
}

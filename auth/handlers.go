package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/models"
)

const userTokenTTL = 24 * time.Hour

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func Register(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("email = ? OR username = ?", input.Email, input.Username).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username or email already exists"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to hash password"})
			return
		}

		user := models.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create user"})
			return
		}

		token, err := IssueToken(secret, user.ID, false, false, userTokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "user": user, "token": token})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
			return
		}

		token, err := IssueToken(secret, user.ID, user.IsAdmin, false, userTokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "token": token})
	}
}

// POST /api/auth/guest
// Creates a throwaway identity so an anonymous visitor gets a working cart.
func CreateGuest(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + uuid.NewString()

		guest := models.User{
			Username:     guestID,
			Email:        guestID + "@guest.local",
			PasswordHash: "-",
			IsGuest:      true,
		}
		if err := db.Create(&guest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create guest"})
			return
		}

		token, err := IssueToken(secret, guest.ID, false, true, userTokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"guest_id": guestID,
			"token":    token,
		})
	}
}

package admincontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/auth"
	"github.com/Abumalik01/mauma-backend/models"
)

const adminTokenTTL = time.Hour

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/admin/login
// Succeeds only for an admin-flagged user with a matching password hash.
func Login(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
			return
		}

		var user models.User
		if err := db.Where("email = ? AND is_admin = ?", input.Email, true).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
			return
		}

		token, err := auth.IssueToken(secret, user.ID, true, false, adminTokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
	}
}

// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}

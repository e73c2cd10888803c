package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"
	"gamevault/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// LoginInput defines the structure for admin login.
type LoginInput struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// CreateAdminInput defines the structure for creating a new admin.
type CreateAdminInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// AdminResponse defines the structure for an admin profile.
type AdminResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
}

func newAdminResponse(admin models.Admin) AdminResponse {
	return AdminResponse{
		ID:        admin.ID,
		CreatedAt: admin.CreatedAt,
		Username:  admin.Username,
		Role:      admin.Role,
	}
}

// endregion

// LoginAdmin godoc
// @Summary      Admin login
// @Description  Verifies credentials and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Credentials"
// @Success      200  {object}  map[string]string "{"token": "...", "role": "admin"}"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Router       /auth/login [post]
func LoginAdmin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.Admin
	if err := database.DB.Where("username = ?", input.Username).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(admin.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": admin.Role})
}

// GetAdminProfile godoc
// @Summary      Current admin profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  AdminResponse
// @Router       /auth/profile [get]
func GetAdminProfile(c *gin.Context) {
	adminID, _ := c.Get("adminID")

	var admin models.Admin
	if err := database.DB.First(&admin, adminID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}
	c.JSON(http.StatusOK, newAdminResponse(admin))
}

// GetAdmins godoc
// @Summary      List all admins (super-admin only)
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  AdminResponse
// @Router       /admin/users [get]
func GetAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := database.DB.Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list admins"})
		return
	}

	response := make([]AdminResponse, 0, len(admins))
	for _, admin := range admins {
		response = append(response, newAdminResponse(admin))
	}
	c.JSON(http.StatusOK, response)
}

// CreateAdmin godoc
// @Summary      Create an admin (super-admin only)
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateAdminInput true "Admin Info"
// @Success      201  {object}  AdminResponse
// @Failure      400  {object}  ErrorResponse "Admin already exists"
// @Router       /admin/users [post]
func CreateAdmin(c *gin.Context) {
	var input CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := input.Role
	if role == "" {
		role = "admin"
	}
	if role != "admin" && role != "super-admin" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be admin or super-admin"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	admin := models.Admin{Username: input.Username, PasswordHash: string(hashed), Role: role}
	if err := database.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admin already exists"})
		return
	}
	c.JSON(http.StatusCreated, newAdminResponse(admin))
}

// DeleteAdmin godoc
// @Summary      Delete an admin (super-admin only)
// @Description  Super-admin accounts cannot be deleted.
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Admin ID"
// @Success      200  {object}  map[string]string "{"message": "Admin deleted"}"
// @Failure      404  {object}  ErrorResponse "Admin not found"
// @Router       /admin/users/{id} [delete]
func DeleteAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var admin models.Admin
	if err := database.DB.First(&admin, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}
	if admin.Role == "super-admin" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete super-admin"})
		return
	}

	if err := database.DB.Unscoped().Delete(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete admin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted"})
}

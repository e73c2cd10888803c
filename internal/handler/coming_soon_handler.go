package handler

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gamevault/backend/internal/catalog"
	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ComingSoonHideInput carries the per-item hide flag for a teaser entry.
type ComingSoonHideInput struct {
	HideGame *bool `json:"hideGame" binding:"required"`
}

type ComingSoonResponse struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IconPath    string    `json:"icon_path"`
	HideGame    bool      `json:"hideGame"`
}

func newComingSoonResponse(entry models.ComingSoon) ComingSoonResponse {
	return ComingSoonResponse{
		ID:          entry.ID,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
		Name:        entry.Name,
		Description: entry.Description,
		IconPath:    entry.IconPath,
		HideGame:    entry.HideGame,
	}
}

// iconExtAllowed mirrors the upload filter of the admin tool: icons are
// images only.
func iconExtAllowed(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpeg", ".jpg", ".png", ".gif", ".webp":
		return true
	}
	return false
}

// maxIconSize caps icon uploads at 5MB.
const maxIconSize = 5 << 20

// CreateComingSoon godoc
// @Summary      Create a coming-soon entry
// @Tags         admin-coming-soon
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "Name"
// @Param        description  formData  string  false  "Description"
// @Param        icon         formData  file    true   "Icon image (max 5MB)"
// @Success      201  {object}  ComingSoonResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/coming-soon [post]
func CreateComingSoon(c *gin.Context) {
	iconFH, err := c.FormFile("icon")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Icon file is required"})
		return
	}
	if !iconExtAllowed(iconFH.Filename) || iconFH.Size > maxIconSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Icon must be an image up to 5MB"})
		return
	}

	iconFile, err := iconFH.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read icon upload"})
		return
	}
	defer iconFile.Close()

	entry, err := catalogSvc.CreateComingSoon(
		c.PostForm("name"),
		c.PostForm("description"),
		&catalog.UploadedFile{Reader: iconFile, Filename: iconFH.Filename},
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newComingSoonResponse(*entry))
}

// GetComingSoon godoc
// @Summary      List all coming-soon entries (admin, unfiltered)
// @Tags         coming-soon
// @Produce      json
// @Success      200  {array}  ComingSoonResponse
// @Router       /coming-soon [get]
func GetComingSoon(c *gin.Context) {
	entries, err := catalogSvc.ListComingSoon()
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ComingSoonResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, newComingSoonResponse(entry))
	}
	c.JSON(http.StatusOK, response)
}

// GetActiveComingSoon godoc
// @Summary      List publicly visible coming-soon entries
// @Tags         coming-soon
// @Produce      json
// @Success      200  {array}  ComingSoonResponse
// @Router       /coming-soon/active [get]
func GetActiveComingSoon(c *gin.Context) {
	entries, err := visEngine.ActiveComingSoon()
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ComingSoonResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, newComingSoonResponse(entry))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateComingSoon godoc
// @Summary      Update a coming-soon entry
// @Description  Applies the provided fields only; a new icon replaces the old one after the record is saved.
// @Tags         admin-coming-soon
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Entry ID"
// @Success      200  {object}  ComingSoonResponse
// @Failure      404  {object}  ErrorResponse "Entry not found"
// @Router       /admin/coming-soon/{id} [put]
func UpdateComingSoon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	var name, description *string
	if values, ok := form.Value["name"]; ok && len(values) > 0 {
		name = &values[0]
	}
	if values, ok := form.Value["description"]; ok && len(values) > 0 {
		description = &values[0]
	}

	var icon *catalog.UploadedFile
	if files := form.File["icon"]; len(files) > 0 {
		if !iconExtAllowed(files[0].Filename) || files[0].Size > maxIconSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Icon must be an image up to 5MB"})
			return
		}
		iconFile, err := files[0].Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read icon upload"})
			return
		}
		defer iconFile.Close()
		icon = &catalog.UploadedFile{Reader: iconFile, Filename: files[0].Filename}
	}

	entry, err := catalogSvc.UpdateComingSoon(uint(id), name, description, icon)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newComingSoonResponse(*entry))
}

// DeleteComingSoon godoc
// @Summary      Delete a coming-soon entry
// @Tags         admin-coming-soon
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Entry ID"
// @Success      200  {object}  map[string]string "{"message": "Coming soon entry deleted"}"
// @Failure      404  {object}  ErrorResponse "Entry not found"
// @Router       /admin/coming-soon/{id} [delete]
func DeleteComingSoon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := catalogSvc.DeleteComingSoon(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coming soon entry deleted"})
}

// ToggleHideComingSoon godoc
// @Summary      Hide or show one coming-soon entry
// @Tags         admin-coming-soon
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                  true  "Entry ID"
// @Param        input body  ComingSoonHideInput  true  "Hide flag"
// @Success      200  {object}  ComingSoonResponse
// @Failure      404  {object}  ErrorResponse "Entry not found"
// @Router       /admin/coming-soon/{id}/toggle-hide [put]
func ToggleHideComingSoon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input ComingSoonHideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := catalogSvc.SetComingSoonHidden(uint(id), *input.HideGame)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newComingSoonResponse(*entry))
}

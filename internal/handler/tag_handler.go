package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type TagInput struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// TagHideInput carries the per-item hide flag for a tag.
type TagHideInput struct {
	HideTag *bool `json:"hideTag" binding:"required"`
}

type TagResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	HideTag   bool      `json:"hideTag"`
}

func newTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
		Name:      tag.Name,
		Color:     tag.Color,
		HideTag:   tag.HideTag,
	}
}

// CreateTag godoc
// @Summary      Create a new tag
// @Description  Creates a tag for featured slots. Names are lowercased; color defaults to the standard purple.
// @Tags         admin-tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body TagInput true "Tag Info"
// @Success      201  {object}  TagResponse
// @Failure      400  {object}  ErrorResponse "Name already exists or bad color"
// @Router       /admin/tags [post]
func CreateTag(c *gin.Context) {
	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := catalogSvc.CreateTag(input.Name, input.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTagResponse(*tag))
}

// GetTags godoc
// @Summary      List all tags (admin, unfiltered)
// @Tags         tags
// @Produce      json
// @Success      200  {array}  TagResponse
// @Router       /tags [get]
func GetTags(c *gin.Context) {
	tags, err := catalogSvc.ListTags()
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, newTagResponse(tag))
	}
	c.JSON(http.StatusOK, response)
}

// GetActiveTags godoc
// @Summary      List publicly visible tags
// @Tags         tags
// @Produce      json
// @Success      200  {array}  TagResponse
// @Router       /tags/active [get]
func GetActiveTags(c *gin.Context) {
	tags, err := visEngine.ActiveTags()
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, newTagResponse(tag))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateTag godoc
// @Summary      Update a tag
// @Tags         admin-tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int       true  "Tag ID"
// @Param        input body  TagInput  true  "New Tag Info"
// @Success      200  {object}  TagResponse
// @Failure      404  {object}  ErrorResponse "Tag not found"
// @Router       /admin/tags/{id} [put]
func UpdateTag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := catalogSvc.UpdateTag(uint(id), input.Name, input.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTagResponse(*tag))
}

// DeleteTag godoc
// @Summary      Delete a tag
// @Tags         admin-tags
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Tag ID"
// @Success      200  {object}  map[string]string "{"message": "Tag deleted"}"
// @Failure      404  {object}  ErrorResponse "Tag not found"
// @Router       /admin/tags/{id} [delete]
func DeleteTag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := catalogSvc.DeleteTag(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

// ToggleHideTag godoc
// @Summary      Hide or show one tag
// @Description  Hidden tags stay attached to featured slots but are nulled out in public views.
// @Tags         admin-tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int           true  "Tag ID"
// @Param        input body  TagHideInput  true  "Hide flag"
// @Success      200  {object}  TagResponse
// @Failure      404  {object}  ErrorResponse "Tag not found"
// @Router       /admin/tags/{id}/toggle-hide [put]
func ToggleHideTag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input TagHideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := catalogSvc.SetTagHidden(uint(id), *input.HideTag)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTagResponse(*tag))
}

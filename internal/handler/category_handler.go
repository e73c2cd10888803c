package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	HideCategory bool      `json:"hideCategory"`
}

func newCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{
		ID:           category.ID,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
		Name:         category.Name,
		Description:  category.Description,
		HideCategory: category.HideCategory,
	}
}

// CreateCategory godoc
// @Summary      Create a new category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CategoryInput true "Category Info"
// @Success      201  {object}  CategoryResponse
// @Failure      400  {object}  ErrorResponse "Name already exists"
// @Router       /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := catalogSvc.CreateCategory(input.Name, input.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCategoryResponse(*category))
}

// GetCategories godoc
// @Summary      List all categories (admin, unfiltered)
// @Tags         categories
// @Produce      json
// @Success      200  {array}  CategoryResponse
// @Router       /categories [get]
func GetCategories(c *gin.Context) {
	categories, err := catalogSvc.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, newCategoryResponse(category))
	}
	c.JSON(http.StatusOK, response)
}

// GetActiveCategories godoc
// @Summary      List publicly visible categories
// @Description  Empty when the category section is hidden; otherwise excludes individually hidden categories.
// @Tags         categories
// @Produce      json
// @Success      200  {array}  CategoryResponse
// @Router       /categories/active [get]
func GetActiveCategories(c *gin.Context) {
	categories, err := visEngine.ActiveCategories()
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, newCategoryResponse(category))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateCategory godoc
// @Summary      Update a category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int            true  "Category ID"
// @Param        input body  CategoryInput  true  "New Category Info"
// @Success      200  {object}  CategoryResponse
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Router       /admin/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := catalogSvc.UpdateCategory(uint(id), input.Name, &input.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCategoryResponse(*category))
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Tags         admin-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Category ID"
// @Success      200  {object}  map[string]string "{"message": "Category deleted"}"
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Router       /admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := catalogSvc.DeleteCategory(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// CategoryHideInput carries the per-item hide flag for a category.
type CategoryHideInput struct {
	HideCategory *bool `json:"hideCategory" binding:"required"`
}

// ToggleHideCategory godoc
// @Summary      Hide or show one category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                true  "Category ID"
// @Param        input body  CategoryHideInput  true  "Hide flag"
// @Success      200  {object}  CategoryResponse
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Router       /admin/categories/{id}/toggle-hide [put]
func ToggleHideCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input CategoryHideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := catalogSvc.SetCategoryHidden(uint(id), *input.HideCategory)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCategoryResponse(*category))
}

package handler

import (
	"errors"
	"net/http"
	"os"

	"gamevault/backend/internal/archive"
	"gamevault/backend/internal/catalog"
	"gamevault/backend/internal/storage"
	"gamevault/backend/internal/visibility"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

var (
	catalogSvc *catalog.Service
	visEngine  *visibility.Engine
	scratchDir string
)

// Init wires the handlers to their services. Must be called before any
// route is served.
func Init(db *gorm.DB, store *storage.AssetStore, scratch string) error {
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return err
	}
	catalogSvc = catalog.New(db, store)
	visEngine = visibility.New(db)
	scratchDir = scratch
	return nil
}

// respondError maps service errors onto the HTTP taxonomy: validation and
// uniqueness conflicts are 400, unresolved ids are 404, everything else is
// a storage-level 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrValidation),
		errors.Is(err, catalog.ErrMissingFile),
		errors.Is(err, catalog.ErrDuplicateTitle),
		errors.Is(err, catalog.ErrNameExists),
		errors.Is(err, catalog.ErrPositionTaken),
		errors.Is(err, archive.ErrExtraction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

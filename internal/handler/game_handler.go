package handler

import (
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gamevault/backend/internal/catalog"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameResponse defines the structure returned for a game.
type GameResponse struct {
	ID                uint               `json:"id"`
	Title             string             `json:"title"`
	Slug              string             `json:"slug"`
	Description       string             `json:"description"`
	IconPath          string             `json:"icon_path"`
	BuildEntryPath    string             `json:"build_entry_path"`
	ExtractRootPath   string             `json:"extract_root_path"`
	EntrypointMissing bool               `json:"entrypoint_missing"`
	Orientation       string             `json:"orientation"`
	IsActive          bool               `json:"is_active"`
	UploadedAt        time.Time          `json:"uploaded_at"`
	Categories        []CategoryResponse `json:"categories"`
}

func newGameResponse(game models.Game) GameResponse {
	categories := make([]CategoryResponse, 0, len(game.Categories))
	for _, category := range game.Categories {
		if category != nil {
			categories = append(categories, newCategoryResponse(*category))
		}
	}

	return GameResponse{
		ID:                game.ID,
		Title:             game.Title,
		Slug:              game.Slug,
		Description:       game.Description,
		IconPath:          game.IconPath,
		BuildEntryPath:    game.BuildEntryPath,
		ExtractRootPath:   game.ExtractRootPath,
		EntrypointMissing: game.EntrypointMissing,
		Orientation:       game.Orientation,
		IsActive:          game.IsActive,
		UploadedAt:        game.CreatedAt,
		Categories:        categories,
	}
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// region --- Upload helpers ---

// spoolArchive saves an uploaded zip to scratch disk so the catalog can
// extract it. The service removes it after a confirmed extraction; the
// handler removes it again on failure paths (Discard-style, tolerant of a
// missing file).
func spoolArchive(c *gin.Context, fh *multipart.FileHeader, name string) (string, error) {
	path := filepath.Join(scratchDir, storage.UniqueName(name)+filepath.Ext(fh.Filename))
	if err := c.SaveUploadedFile(fh, path); err != nil {
		return "", err
	}
	return path, nil
}

func removeScratch(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not remove scratch file %s: %v", path, err)
	}
}

// parseIDList accepts repeated form fields and comma-separated values.
func parseIDList(values []string) []uint {
	var ids []uint
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if id, err := strconv.ParseUint(part, 10, 32); err == nil {
				ids = append(ids, uint(id))
			}
		}
	}
	return ids
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Upload a new game
// @Description  Ingests a zipped static-web build with its icon and creates the catalog entry.
// @Tags         admin-games
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "Game title (unique)"
// @Param        description  formData  string  true   "Game description"
// @Param        orientation  formData  string  false  "Preferred orientation"
// @Param        categoryIds  formData  string  false  "Comma-separated category IDs"
// @Param        icon         formData  file    true   "Icon image"
// @Param        zipFile      formData  file    true   "Zipped build"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/games [post]
func CreateGame(c *gin.Context) {
	title := c.PostForm("title")

	iconFH, iconErr := c.FormFile("icon")
	zipFH, zipErr := c.FormFile("zipFile")
	if iconErr != nil || zipErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both icon and zip file are required"})
		return
	}

	iconFile, err := iconFH.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read icon upload"})
		return
	}
	defer iconFile.Close()

	archivePath, err := spoolArchive(c, zipFH, title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store uploaded archive"})
		return
	}
	defer removeScratch(archivePath)

	game, err := catalogSvc.CreateGame(catalog.CreateGameInput{
		Title:       title,
		Description: c.PostForm("description"),
		Orientation: c.PostForm("orientation"),
		CategoryIDs: parseIDList(c.PostFormArray("categoryIds")),
		Icon:        &catalog.UploadedFile{Reader: iconFile, Filename: iconFH.Filename},
		ArchivePath: archivePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(*game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Applies the provided fields only. A categoryIds key that is present but empty clears the category set. New icon or zip replaces the old asset after the record is saved.
// @Tags         admin-games
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /admin/games/{id} [put]
func UpdateGame(c *gin.Context) {
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

	var in catalog.UpdateGameInput
	if values, ok := form.Value["title"]; ok && len(values) > 0 {
		in.Title = &values[0]
	}
	if values, ok := form.Value["description"]; ok && len(values) > 0 {
		in.Description = &values[0]
	}
	if values, ok := form.Value["orientation"]; ok && len(values) > 0 {
		in.Orientation = &values[0]
	}
	if values, ok := form.Value["categoryIds"]; ok {
		// Key present means replace; empty value clears the set.
		ids := parseIDList(values)
		if ids == nil {
			ids = []uint{}
		}
		in.CategoryIDs = &ids
	}

	if files := form.File["icon"]; len(files) > 0 {
		iconFile, err := files[0].Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read icon upload"})
			return
		}
		defer iconFile.Close()
		in.Icon = &catalog.UploadedFile{Reader: iconFile, Filename: files[0].Filename}
	}

	var archivePath string
	if files := form.File["zipFile"]; len(files) > 0 {
		archivePath, err = spoolArchive(c, files[0], c.PostForm("title"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store uploaded archive"})
			return
		}
		defer removeScratch(archivePath)
		in.ArchivePath = &archivePath
	}

	game, err := catalogSvc.UpdateGame(uint(id), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// ToggleGameActive godoc
// @Summary      Toggle a game's active flag
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /admin/games/{id}/toggle [patch]
func ToggleGameActive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	game, err := catalogSvc.ToggleGameActive(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// DeleteGame godoc
// @Summary      Permanently delete a game
// @Description  Removes the catalog entry, then best-effort deletes its icon and extracted build tree.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Game ID"
// @Success      200  {object}  map[string]string "{"message": "Game permanently deleted"}"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /admin/games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := catalogSvc.DeleteGame(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game permanently deleted"})
}

// endregion

// region --- Public Handlers ---

// GetGames godoc
// @Summary      List games
// @Description  Returns a paginated, unfiltered list of games for the admin grid.
// @Tags         games
// @Produce      json
// @Param        page   query  int  false  "Page number"     default(1)
// @Param        limit  query  int  false  "Items per page"  default(10)
// @Success      200  {object}  PaginatedGameResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	games, total, err := catalogSvc.ListGames(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(response, total, page, limit))
}

// GetGame godoc
// @Summary      Get a single game
// @Description  Resolves by slug first, falling back to a numeric id for old links.
// @Tags         games
// @Produce      json
// @Param        slugOrId  path  string  true  "Game slug or ID"
// @Success      200  {object}  GameResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{slugOrId} [get]
func GetGame(c *gin.Context) {
	game, err := catalogSvc.GetGame(c.Param("slugOrId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// endregion

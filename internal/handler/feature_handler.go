package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamevault/backend/internal/catalog"
	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// FeatureGameInput is the create-or-update payload for a featured slot. An
// id present in the body makes this an update of that row; absent, a
// create. The admin frontend depends on this single-endpoint shape.
type FeatureGameInput struct {
	ID       *uint `json:"id"`
	GameID   uint  `json:"gameId" binding:"required"`
	TagID    *uint `json:"tagId"`
	Position int   `json:"position" binding:"required"`
}

type FeatureGameResponse struct {
	ID        uint          `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	GameID    uint          `json:"gameId"`
	TagID     *uint         `json:"tagId"`
	Position  int           `json:"position"`
	Game      *GameResponse `json:"game,omitempty"`
	Tag       *TagResponse  `json:"tag,omitempty"`
}

func newFeatureGameResponse(slot models.FeatureGame) FeatureGameResponse {
	response := FeatureGameResponse{
		ID:        slot.ID,
		CreatedAt: slot.CreatedAt,
		UpdatedAt: slot.UpdatedAt,
		GameID:    slot.GameID,
		TagID:     slot.TagID,
		Position:  slot.Position,
	}
	if slot.Game.ID != 0 {
		game := newGameResponse(slot.Game)
		response.Game = &game
	}
	if slot.Tag != nil {
		tag := newTagResponse(*slot.Tag)
		response.Tag = &tag
	}
	return response
}

// UpsertFeatureGame godoc
// @Summary      Create or update a featured slot
// @Description  With an id in the body, updates that slot in place; without one, creates a new slot. Positions are unique across all slots.
// @Tags         admin-feature-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body FeatureGameInput true "Slot Info"
// @Success      200  {object}  FeatureGameResponse
// @Failure      400  {object}  ErrorResponse "Position is already taken"
// @Failure      404  {object}  ErrorResponse "Game or tag not found"
// @Router       /admin/feature-games [post]
func UpsertFeatureGame(c *gin.Context) {
	var input FeatureGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := catalogSvc.UpsertFeatureGame(catalog.FeatureGameUpsert{
		ID:       input.ID,
		GameID:   input.GameID,
		TagID:    input.TagID,
		Position: input.Position,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if input.ID == nil {
		status = http.StatusCreated
	}
	c.JSON(status, newFeatureGameResponse(*slot))
}

// GetFeatureGames godoc
// @Summary      List all featured slots (admin, unfiltered)
// @Tags         feature-games
// @Produce      json
// @Success      200  {array}  FeatureGameResponse
// @Router       /feature-games [get]
func GetFeatureGames(c *gin.Context) {
	slots, err := catalogSvc.ListFeatureGames()
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]FeatureGameResponse, 0, len(slots))
	for _, slot := range slots {
		response = append(response, newFeatureGameResponse(slot))
	}
	c.JSON(http.StatusOK, response)
}

// GetActiveFeatureGames godoc
// @Summary      List publicly visible featured slots
// @Description  Drops slots whose game is missing or inactive; a hidden tag section nulls out tags while slots stay visible.
// @Tags         feature-games
// @Produce      json
// @Success      200  {array}  FeatureGameResponse
// @Router       /feature-games/active [get]
func GetActiveFeatureGames(c *gin.Context) {
	slots, err := visEngine.ActiveFeatureGames()
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]FeatureGameResponse, 0, len(slots))
	for _, slot := range slots {
		response = append(response, newFeatureGameResponse(slot))
	}
	c.JSON(http.StatusOK, response)
}

// DeleteFeatureGame godoc
// @Summary      Delete a featured slot
// @Tags         admin-feature-games
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Slot ID"
// @Success      200  {object}  map[string]string "{"message": "Feature game deleted"}"
// @Failure      404  {object}  ErrorResponse "Slot not found"
// @Router       /admin/feature-games/{id} [delete]
func DeleteFeatureGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := catalogSvc.DeleteFeatureGame(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feature game deleted"})
}

// DeleteFeatureGameByPosition godoc
// @Summary      Delete whichever slot occupies a position
// @Tags         admin-feature-games
// @Produce      json
// @Security     BearerAuth
// @Param        position  path  int  true  "Slot position"
// @Success      200  {object}  map[string]string "{"message": "Feature game deleted"}"
// @Failure      404  {object}  ErrorResponse "No slot at this position"
// @Router       /admin/feature-games/position/{position} [delete]
func DeleteFeatureGameByPosition(c *gin.Context) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position"})
		return
	}

	if err := catalogSvc.DeleteFeatureGameByPosition(position); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feature game deleted"})
}

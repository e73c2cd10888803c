package handler

import (
	"net/http"

	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// HideSectionInput carries the collection-wide hide flag.
type HideSectionInput struct {
	HideSection *bool `json:"hideSection" binding:"required"`
}

// HideSectionStatus reports the collection-wide hide flag.
type HideSectionStatus struct {
	HideSection bool `json:"hideSection"`
}

// toggleSection builds the handler pair shared by every hideable
// collection: one POST to set the flag, one GET to read it back.
func toggleSection(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input HideSectionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hideSection must be a boolean"})
			return
		}

		if err := catalogSvc.SetSectionHidden(collection, *input.HideSection); err != nil {
			respondError(c, err)
			return
		}

		message := "Section shown"
		if *input.HideSection {
			message = "Section hidden"
		}
		c.JSON(http.StatusOK, gin.H{"message": message, "hideSection": *input.HideSection})
	}
}

func sectionStatus(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		hidden, err := catalogSvc.SectionHidden(collection)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, HideSectionStatus{HideSection: hidden})
	}
}

// Section handlers, one pair per hideable collection.

// ToggleHideCategorySection godoc
// @Summary      Hide or show the whole category section
// @Tags         admin-categories
// @Accept       json
// @Produce     json
// @Security     BearerAuth
// @Param        input body HideSectionInput true "Hide flag"
// @Success      200  {object}  HideSectionStatus
// @Router       /admin/categories/toggle-hide-section [post]
var ToggleHideCategorySection = toggleSection(models.CollectionCategories)

// CategorySectionStatus godoc
// @Summary      Read the category section hide flag
// @Tags         categories
// @Produce      json
// @Success      200  {object}  HideSectionStatus
// @Router       /categories/hide-section-status [get]
var CategorySectionStatus = sectionStatus(models.CollectionCategories)

// ToggleHideTagSection godoc
// @Summary      Hide or show the whole tag section
// @Tags         admin-tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body HideSectionInput true "Hide flag"
// @Success      200  {object}  HideSectionStatus
// @Router       /admin/tags/toggle-hide-section [post]
var ToggleHideTagSection = toggleSection(models.CollectionTags)

// TagSectionStatus godoc
// @Summary      Read the tag section hide flag
// @Tags         tags
// @Produce      json
// @Success      200  {object}  HideSectionStatus
// @Router       /tags/hide-section-status [get]
var TagSectionStatus = sectionStatus(models.CollectionTags)

// ToggleHideComingSoonSection godoc
// @Summary      Hide or show the whole coming-soon section
// @Tags         admin-coming-soon
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body HideSectionInput true "Hide flag"
// @Success      200  {object}  HideSectionStatus
// @Router       /admin/coming-soon/toggle-hide-section [post]
var ToggleHideComingSoonSection = toggleSection(models.CollectionComingSoon)

// ComingSoonSectionStatus godoc
// @Summary      Read the coming-soon section hide flag
// @Tags         coming-soon
// @Produce      json
// @Success      200  {object}  HideSectionStatus
// @Router       /coming-soon/hide-section-status [get]
var ComingSoonSectionStatus = sectionStatus(models.CollectionComingSoon)

// ToggleHideFeatureGameSection godoc
// @Summary      Hide or show the whole featured section
// @Tags         admin-feature-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body HideSectionInput true "Hide flag"
// @Success      200  {object}  HideSectionStatus
// @Router       /admin/feature-games/toggle-hide-section [post]
var ToggleHideFeatureGameSection = toggleSection(models.CollectionFeatureGames)

// FeatureGameSectionStatus godoc
// @Summary      Read the featured section hide flag
// @Tags         feature-games
// @Produce      json
// @Success      200  {object}  HideSectionStatus
// @Router       /feature-games/hide-section-status [get]
var FeatureGameSectionStatus = sectionStatus(models.CollectionFeatureGames)

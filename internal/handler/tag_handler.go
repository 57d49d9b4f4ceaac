package handler

import (
	"net/http"
	"time"

	"dishlist/backend/internal/models"
	"dishlist/backend/internal/restaurant"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// region --- DTOs ---

// TagResponse is a registered tag.
type TagResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
}

// endregion

func newTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		CreatedAt: tag.CreatedAt,
		Name:      tag.Name,
	}
}

// TagHandler serves the tag registry.
type TagHandler struct {
	restaurants *restaurant.Service
	log         *logrus.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(restaurants *restaurant.Service, log *logrus.Logger) *TagHandler {
	return &TagHandler{restaurants: restaurants, log: log}
}

// GetTags godoc
// @Summary      Get all tags
// @Description  Retrieves every registered tag, ordered by name. Tags are created implicitly when a restaurant uses them.
// @Tags         tags
// @Produce      json
// @Success      200  {array}   TagResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tags [get]
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.restaurants.Tags(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, newTagResponse(tag))
	}
	c.JSON(http.StatusOK, response)
}

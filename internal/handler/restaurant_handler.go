package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dishlist/backend/internal/auth"
	"dishlist/backend/internal/filter"
	"dishlist/backend/internal/models"
	"dishlist/backend/internal/restaurant"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// region --- DTOs ---

// EvaluationResponse holds the sub-ratings and their mean.
type EvaluationResponse struct {
	Location        int     `json:"location" example:"4"`
	Service         int     `json:"service" example:"5"`
	PriceQuality    int     `json:"priceQuality" example:"3"`
	FoodQuality     int     `json:"foodQuality" example:"5"`
	Atmosphere      int     `json:"atmosphere" example:"4"`
	FinalEvaluation float64 `json:"finalEvaluation" example:"4.2"`
}

// RestaurantResponse is a restaurant as seen by a viewer.
type RestaurantResponse struct {
	ID            uint                    `json:"id" example:"1"`
	OwnerID       uint                    `json:"ownerId" example:"1"`
	OwnerName     string                  `json:"ownerName" example:"testuser"`
	Name          string                  `json:"name" example:"Taberna"`
	City          string                  `json:"city" example:"Lisbon"`
	Neighborhood  string                  `json:"neighborhood" example:"Alfama"`
	Status        models.RestaurantStatus `json:"status" example:"TRIED_IT"`
	Highlights    string                  `json:"highlights"`
	LastVisitedAt *time.Time              `json:"lastVisitedAt,omitempty"`
	PrivacyLevel  models.PrivacyLevel     `json:"privacyLevel" example:"PUBLIC"`
	Evaluation    *EvaluationResponse     `json:"evaluation,omitempty"`
	Tags          []string                `json:"tags"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

func newRestaurantResponse(r models.Restaurant) RestaurantResponse {
	response := RestaurantResponse{
		ID:            r.ID,
		OwnerID:       r.OwnerID,
		OwnerName:     r.Owner.DisplayName(),
		Name:          r.Name,
		City:          r.City,
		Neighborhood:  r.Neighborhood,
		Status:        r.Status,
		Highlights:    r.Highlights,
		LastVisitedAt: r.LastVisitedAt,
		PrivacyLevel:  r.PrivacyLevel,
		Tags:          r.TagNames(),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if e := r.Evaluation; e != nil {
		response.Evaluation = &EvaluationResponse{
			Location:        e.Location,
			Service:         e.Service,
			PriceQuality:    e.PriceQuality,
			FoodQuality:     e.FoodQuality,
			Atmosphere:      e.Atmosphere,
			FinalEvaluation: e.Final(),
		}
	}
	return response
}

// endregion

// RestaurantHandler serves the restaurant catalog.
type RestaurantHandler struct {
	restaurants *restaurant.Service
	log         *logrus.Logger
}

// NewRestaurantHandler creates a RestaurantHandler.
func NewRestaurantHandler(restaurants *restaurant.Service, log *logrus.Logger) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, log: log}
}

// ListRestaurants godoc
// @Summary      List restaurants
// @Description  Lists the restaurants the viewer may see, narrowed by scope and filters. A missing scope means "all"; an empty scope returns nothing.
// @Tags         restaurants
// @Produce      json
// @Security     BearerAuth
// @Param        scope        query     string  false  "Comma-separated list of all, mine, friends"
// @Param        city         query     string  false  "Exact city"
// @Param        neighborhood query     string  false  "Exact neighborhood"
// @Param        status       query     string  false  "WANT_TO_GO or TRIED_IT"
// @Param        min_rating   query     number  false  "Minimum final evaluation (inclusive)"
// @Param        q            query     string  false  "Name contains (case-insensitive)"
// @Param        tags         query     string  false  "Comma-separated tags; all must be present"
// @Param        sort         query     string  false  "rating, name or date"
// @Param        page         query     int     false  "Page number" default(1)
// @Param        limit        query     int     false  "Items per page" default(10)
// @Success      200  {object}  PaginatedResponse[RestaurantResponse]
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /restaurants [get]
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	cfg, err := parseFilterConfig(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	page, limit := parsePagination(c)

	list, err := h.restaurants.List(c.Request.Context(), auth.ViewerID(c), cfg)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	response := make([]RestaurantResponse, 0, len(list))
	for _, r := range list {
		response = append(response, newRestaurantResponse(r))
	}
	c.JSON(http.StatusOK, PaginateSlice(response, page, limit))
}

// GetRestaurantStats godoc
// @Summary      Restaurant statistics
// @Description  Summarizes the restaurants a listing with the same filters would return.
// @Tags         restaurants
// @Produce      json
// @Security     BearerAuth
// @Param        scope        query     string  false  "Comma-separated list of all, mine, friends"
// @Param        city         query     string  false  "Exact city"
// @Param        neighborhood query     string  false  "Exact neighborhood"
// @Param        status       query     string  false  "WANT_TO_GO or TRIED_IT"
// @Param        min_rating   query     number  false  "Minimum final evaluation (inclusive)"
// @Param        q            query     string  false  "Name contains (case-insensitive)"
// @Param        tags         query     string  false  "Comma-separated tags; all must be present"
// @Success      200  {object}  filter.Stats
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /restaurants/stats [get]
func (h *RestaurantHandler) GetRestaurantStats(c *gin.Context) {
	cfg, err := parseFilterConfig(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	stats, err := h.restaurants.Stats(c.Request.Context(), auth.ViewerID(c), cfg)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetRestaurant godoc
// @Summary      Get a restaurant
// @Description  Retrieves a restaurant. Restaurants the viewer may not see are reported as not found.
// @Tags         restaurants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Restaurant ID"
// @Success      200  {object}  RestaurantResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /restaurants/{id} [get]
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	r, err := h.restaurants.Get(c.Request.Context(), auth.ViewerID(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newRestaurantResponse(*r))
}

// CreateRestaurant godoc
// @Summary      Create a restaurant
// @Description  Adds a restaurant owned by the current user. Unknown tags are registered on the fly.
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body restaurant.Input true "Restaurant"
// @Success      201  {object}  RestaurantResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /restaurants [post]
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var input restaurant.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	r, err := h.restaurants.Create(c.Request.Context(), auth.ViewerID(c), input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, newRestaurantResponse(*r))
}

// UpdateRestaurant godoc
// @Summary      Update a restaurant
// @Description  Replaces a restaurant's fields and evaluation. When tags is present the restaurant's tags are synchronized to it; when it is omitted they are left alone.
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Restaurant ID"
// @Param        input body      restaurant.Input  true  "Restaurant"
// @Success      200  {object}  RestaurantResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the owner"
// @Failure      404  {object}  ErrorResponse
// @Router       /restaurants/{id} [put]
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input restaurant.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	r, err := h.restaurants.Update(c.Request.Context(), auth.ViewerID(c), id, input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newRestaurantResponse(*r))
}

// DeleteRestaurant godoc
// @Summary      Delete a restaurant
// @Description  Deletes a restaurant and its evaluation. Its tags stay registered.
// @Tags         restaurants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Restaurant ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the owner"
// @Failure      404  {object}  ErrorResponse
// @Router       /restaurants/{id} [delete]
func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.restaurants.Delete(c.Request.Context(), auth.ViewerID(c), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Restaurant deleted"})
}

// GetLocations godoc
// @Summary      List locations
// @Description  Distinct cities and neighborhoods among the restaurants the viewer may see.
// @Tags         restaurants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  restaurant.Locations
// @Failure      500  {object}  ErrorResponse
// @Router       /locations [get]
func (h *RestaurantHandler) GetLocations(c *gin.Context) {
	locations, err := h.restaurants.Locations(c.Request.Context(), auth.ViewerID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// parseFilterConfig reads the listing filters from the query string.
func parseFilterConfig(c *gin.Context) (filter.Config, error) {
	cfg := filter.DefaultConfig()

	if raw, present := c.GetQuery("scope"); present {
		scopes, err := filter.ParseScopes(raw)
		if err != nil {
			return cfg, err
		}
		cfg.Scopes = scopes
	}
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		cfg.City = &city
	}
	if neighborhood := strings.TrimSpace(c.Query("neighborhood")); neighborhood != "" {
		cfg.Neighborhood = &neighborhood
	}
	if raw := c.Query("status"); raw != "" {
		status := models.RestaurantStatus(strings.ToUpper(raw))
		if !status.Valid() {
			return cfg, fmt.Errorf("invalid status %q", raw)
		}
		cfg.Status = &status
	}
	if raw := c.Query("min_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid min_rating %q", raw)
		}
		cfg.MinRating = &rating
	}
	cfg.NameContains = c.Query("q")
	cfg.Tags = splitCommaSeparated(c.Query("tags"))

	cfg.Sort = filter.SortKey(strings.ToLower(c.Query("sort")))
	if !cfg.Sort.Valid() {
		return cfg, fmt.Errorf("invalid sort %q", c.Query("sort"))
	}
	return cfg, nil
}

func splitCommaSeparated(s string) []string {
	var result []string
	parts := strings.Split(s, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

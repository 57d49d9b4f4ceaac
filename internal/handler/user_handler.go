package handler

import (
	"net/http"

	"dishlist/backend/internal/auth"
	"dishlist/backend/internal/friendship"
	"dishlist/backend/internal/models"
	"dishlist/backend/internal/repository"
	"dishlist/backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// region --- DTOs ---

// PublicUserResponse defines the structure for a user's public profile.
type PublicUserResponse struct {
	ID       uint             `json:"id" example:"1"`
	Username *string          `json:"username,omitempty" example:"testuser"`
	Name     string           `json:"name" example:"testuser"`
	Relation friendship.State `json:"relation" example:"none"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	ID           uint    `json:"id" example:"1"`
	Email        string  `json:"email" example:"test@example.com"`
	Username     *string `json:"username,omitempty" example:"testuser"`
	FriendsCount int     `json:"friends_count"`
}

// endregion

// UserHandler serves user lookups.
type UserHandler struct {
	store   *repository.Store
	friends *friendship.Service
	log     *logrus.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(store *repository.Store, friends *friendship.Service, log *logrus.Logger) *UserHandler {
	return &UserHandler{store: store, friends: friends, log: log}
}

// GetMe godoc
// @Summary      Get current user
// @Description  Retrieves the profile of the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	ctx := c.Request.Context()
	userID := auth.ViewerID(c)

	user, err := h.store.Users.FindByID(ctx, userID)
	if err != nil {
		respondError(c, h.log, apperrors.Wrap(err, "failed to load user"))
		return
	}
	if user == nil {
		respondError(c, h.log, friendship.ErrUserNotFound)
		return
	}

	friends, err := h.friends.FriendsOf(ctx, userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, PrivateUserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FriendsCount: len(friends),
	})
}

// SearchUsers godoc
// @Summary      Search for users
// @Description  Searches users by email or username, excluding the current user. Each result carries its relation to the current user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Search query for email or username"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[PublicUserResponse]
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	ctx := c.Request.Context()
	viewerID := auth.ViewerID(c)
	page, limit := parsePagination(c)

	query := h.store.Users.SearchQuery(ctx, c.Query("q"), viewerID)
	users, err := Paginate[models.User](query, page, limit)
	if err != nil {
		respondError(c, h.log, apperrors.Wrap(err, "failed to search users"))
		return
	}

	response := make([]PublicUserResponse, 0, len(users.Data))
	for _, user := range users.Data {
		state, err := h.friends.StateBetween(ctx, viewerID, user.ID)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		response = append(response, PublicUserResponse{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.DisplayName(),
			Relation: state,
		})
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, users.Meta.TotalItems, page, limit))
}

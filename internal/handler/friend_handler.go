package handler

import (
	"context"
	"net/http"

	"dishlist/backend/internal/auth"
	"dishlist/backend/internal/friendship"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// region --- DTOs ---

// CounterpartInput names the other user of a friendship action.
type CounterpartInput struct {
	CounterpartID uint `json:"counterpartId" binding:"required" example:"2"`
}

// endregion

// FriendHandler serves the friendship endpoints.
type FriendHandler struct {
	friends *friendship.Service
	log     *logrus.Logger
}

// NewFriendHandler creates a FriendHandler.
func NewFriendHandler(friends *friendship.Service, log *logrus.Logger) *FriendHandler {
	return &FriendHandler{friends: friends, log: log}
}

// friendAction binds the counterpart and runs action for the current user.
func (h *FriendHandler) friendAction(c *gin.Context, message string, action func(ctx context.Context, currentUserID, counterpartID uint) error) {
	var input CounterpartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := action(c.Request.Context(), auth.ViewerID(c), input.CounterpartID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// SendRequest godoc
// @Summary      Send friend request
// @Description  Sends a friend request to another user. Fails if any relation already exists between the two users, in either direction.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CounterpartInput true "Addressee"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse "Self request or already related"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Addressee not found"
// @Router       /friends/request [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	h.friendAction(c, "Friend request sent", func(ctx context.Context, me, other uint) error {
		_, err := h.friends.Request(ctx, me, other)
		return err
	})
}

// AcceptRequest godoc
// @Summary      Accept friend request
// @Description  Accepts a pending request sent by the counterpart to the current user.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CounterpartInput true "Requester"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Router       /friends/accept [post]
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	h.friendAction(c, "Friend request accepted", h.friends.Accept)
}

// DeclineRequest godoc
// @Summary      Decline friend request
// @Description  Deletes a pending request sent by the counterpart to the current user.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CounterpartInput true "Requester"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Router       /friends/decline [post]
func (h *FriendHandler) DeclineRequest(c *gin.Context) {
	h.friendAction(c, "Friend request declined", h.friends.Decline)
}

// CancelRequest godoc
// @Summary      Cancel friend request
// @Description  Deletes a pending request the current user sent to the counterpart.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CounterpartInput true "Addressee"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Router       /friends/cancel [post]
func (h *FriendHandler) CancelRequest(c *gin.Context) {
	h.friendAction(c, "Friend request cancelled", h.friends.Cancel)
}

// RemoveFriend godoc
// @Summary      Remove friend
// @Description  Ends an accepted friendship, whichever user sent the original request.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CounterpartInput true "Friend"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Not friends"
// @Router       /friends/remove [post]
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	h.friendAction(c, "Friend removed", h.friends.Remove)
}

// GetFriends godoc
// @Summary      List friends and requests
// @Description  Returns the current user's friend ids and the ids behind their incoming and outgoing pending requests.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  friendship.Overview
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends [get]
func (h *FriendHandler) GetFriends(c *gin.Context) {
	overview, err := h.friends.Overview(c.Request.Context(), auth.ViewerID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

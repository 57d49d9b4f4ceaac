package friendship

import "dishlist/backend/pkg/apperrors"

// Expected outcomes of the state machine. Callers are meant to handle them
// (e.g. show "already friends"); none of them indicates a fault.
var (
	ErrSelfRequest     = apperrors.New(apperrors.KindValidation, "SELF_REQUEST", "cannot send a friend request to yourself")
	ErrAlreadyRelated  = apperrors.New(apperrors.KindValidation, "ALREADY_RELATED", "a request or friendship already exists between these users")
	ErrRequestNotFound = apperrors.New(apperrors.KindNotFound, "REQUEST_NOT_FOUND", "pending friend request not found")
	ErrNotFriends      = apperrors.New(apperrors.KindNotFound, "NOT_FRIENDS", "users are not friends")
	ErrUserNotFound    = apperrors.New(apperrors.KindNotFound, "USER_NOT_FOUND", "user not found")
)

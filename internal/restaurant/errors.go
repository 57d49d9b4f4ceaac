package restaurant

import "dishlist/backend/pkg/apperrors"

var (
	// ErrRestaurantNotFound is returned for missing restaurants and for
	// restaurants the viewer may not see.
	ErrRestaurantNotFound = apperrors.New(apperrors.KindNotFound, "RESTAURANT_NOT_FOUND", "restaurant not found")

	// ErrForbidden is returned when someone other than the owner tries to
	// change a restaurant.
	ErrForbidden = apperrors.New(apperrors.KindForbidden, "FORBIDDEN", "only the owner can modify this restaurant")
)

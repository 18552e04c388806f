package wishlist

import (
	"net/http"

	"go-saree-api/internal/pkg/apperror"
)

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)

	ErrWishlistUnavailable = apperror.New(
		apperror.CodeUpstreamFailed,
		"Wishlist is unavailable right now",
		http.StatusBadGateway,
	)

	ErrWishlistFailed = apperror.New(
		apperror.CodeUpstreamFailed,
		"Action failed, please try again",
		http.StatusBadGateway,
	)
)

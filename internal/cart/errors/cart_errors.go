package carterrors

import (
	"net/http"

	"go-saree-api/internal/pkg/apperror"
)

var (
	ErrCartTokenRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A cart token or an authenticated session is required",
		http.StatusBadRequest,
	)

	ErrInvalidItemID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cart item id",
		http.StatusBadRequest,
	)

	ErrCouponNotFound = apperror.New(
		apperror.CodeNotFound,
		"Coupon code not found",
		http.StatusNotFound,
	)

	ErrCouponExpired = apperror.New(
		apperror.CodeUnprocessable,
		"This coupon has expired",
		http.StatusUnprocessableEntity,
	)

	ErrCouponLookupFailed = apperror.New(
		apperror.CodeUpstreamFailed,
		"Could not verify the coupon code, please try again",
		http.StatusBadGateway,
	)

	ErrCartSyncFailed = apperror.New(
		apperror.CodeUpstreamFailed,
		"Could not load the server cart",
		http.StatusBadGateway,
	)
)

func MapValidationError(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeInvalidInput,
		"Invalid cart request",
		http.StatusBadRequest,
	)
}

// NewCouponIneligible carries the human-readable minimum-purchase message
// produced by coupon validation so the UI can show it inline.
func NewCouponIneligible(message string) error {
	return apperror.New(
		apperror.CodeUnprocessable,
		message,
		http.StatusUnprocessableEntity,
	)
}

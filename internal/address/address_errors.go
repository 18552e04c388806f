package address

import (
	"net/http"

	"go-saree-api/internal/pkg/apperror"
)

var (
	ErrInvalidAddressID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid address ID",
		http.StatusBadRequest,
	)

	ErrAddressUnavailable = apperror.New(
		apperror.CodeUpstreamFailed,
		"Addresses are unavailable right now",
		http.StatusBadGateway,
	)

	ErrAddressFailed = apperror.New(
		apperror.CodeUpstreamFailed,
		"Action failed, please try again",
		http.StatusBadGateway,
	)
)

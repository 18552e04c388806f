package returns

import (
	"net/http"

	"go-saree-api/internal/pkg/apperror"
)

var (
	ErrReturnsUnavailable = apperror.New(
		apperror.CodeUpstreamFailed,
		"Returns are unavailable right now",
		http.StatusBadGateway,
	)

	ErrReturnFailed = apperror.New(
		apperror.CodeUpstreamFailed,
		"Action failed, please try again",
		http.StatusBadGateway,
	)
)

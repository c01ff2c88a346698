package http

import (
	"errors"
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/pkg/sdk"
	"github.com/sevasetu/kavach/pkg/slogx"
)

// writeServiceError maps service sentinels to API error envelopes. Unknown
// errors are logged and come back as a generic 500 so internals never leak.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		sdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrInvalidOccupancy):
		sdk.ErrInvalidOccupancy.WriteError(w)
	case errors.Is(err, service.ErrNotFound), errors.Is(err, store.ErrNotFound):
		sdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		sdk.ErrAccessDenied.WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		sdk.ErrEmailTaken.WriteError(w)
	case errors.Is(err, service.ErrWeakPassword):
		sdk.ErrWeakPassword.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidGrant), errors.Is(err, service.ErrInvalidRefresh):
		sdk.ErrInvalidGrant.WriteError(w)
	case errors.Is(err, service.ErrTooManyAttempts):
		sdk.ErrTooManyAttempts.WriteError(w)
	case errors.Is(err, service.ErrMFANotEnrolled):
		sdk.ErrMFANotEnrolled.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "path", r.URL.Path, "err", err)
		sdk.ErrServerError.WriteError(w)
	}
}

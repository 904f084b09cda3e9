package authenticator

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/totpqr/handler"
	"github.com/dmitrymomot/totpqr/pkg/totp"
)

// HTTP errors returned by the module endpoints.
var (
	ErrInvalidSecret     = handler.NewHTTPError(http.StatusBadRequest, "invalid_secret")
	ErrInvalidCode       = handler.NewHTTPError(http.StatusUnprocessableEntity, "invalid_code")
	ErrInvalidLabel      = handler.NewHTTPError(http.StatusBadRequest, "invalid_label")
	ErrInvalidSecretSize = handler.NewHTTPError(http.StatusBadRequest, "invalid_secret_size")
)

// httpError joins domain errors with the HTTP error they map to.
// Unmapped errors pass through and render as 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, totp.ErrInvalidEncoding), errors.Is(err, totp.ErrMissingSecret):
		return errors.Join(ErrInvalidSecret, err)
	case errors.Is(err, totp.ErrInvalidCode):
		return errors.Join(ErrInvalidCode, err)
	case errors.Is(err, totp.ErrInvalidLabel):
		return errors.Join(ErrInvalidLabel, err)
	}
	return err
}

// Package httperr maps domain error kinds onto HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/pkg/utils"
	"go.uber.org/zap"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTransientStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err with the status of its kind. Storage and unclassified
// failures are logged and hidden from the client.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	switch code {
	case http.StatusServiceUnavailable:
		zap.L().Warn("request failed on storage", zap.Error(err))
		utils.RespondWithError(w, code, "Service temporarily unavailable")
	case http.StatusInternalServerError:
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
	default:
		utils.RespondWithError(w, code, err.Error())
	}
}

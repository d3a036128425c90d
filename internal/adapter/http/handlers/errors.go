package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mooosty/bckndmstr/internal/core/domain"
	"github.com/mooosty/bckndmstr/pkg/apierrors"
)

// respondDomainError maps domain errors onto the failure envelope.
// Unrecognized errors are logged and surface as a generic internal
// failure with the given message key.
func respondDomainError(c *gin.Context, lang string, err error, internalMsgKey string) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateErrorWithDetails(apierrors.MsgInvalidPayload, lang, validation.Error()),
		)
		return
	}

	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgProjectNotFound, lang))
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTaskNotFound, lang))
	case errors.Is(err, domain.ErrProgressNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgProgressNotFound, lang))
	case errors.Is(err, domain.ErrTaskNotInProgress):
		c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTaskNotInProgress, lang))
	case errors.Is(err, domain.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgApplicationNotFound, lang))
	default:
		zap.L().Error("unexpected service error", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(internalMsgKey, lang))
	}
}

package middleware

import (
	"log/slog"
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error. Non-AppErrors become a
// generic 500. With debug on, the underlying cause is returned in the error field.
func ErrorHandler(debug bool, log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr, ok := apperror.As(err)
		if !ok {
			appErr = apperror.Internal(err)
			appErr.Message = "An unexpected error occurred. Please try again later."
		}

		if appErr.Code >= http.StatusInternalServerError {
			log.Error("request failed",
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", appErr.Detail(),
			)
		}

		var detail interface{}
		if debug && appErr.Err != nil {
			detail = appErr.Detail()
		}
		response.Error(c, appErr.Code, appErr.Message, detail)
	}
}

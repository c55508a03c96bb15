package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claon/claon-admin/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "internal server error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError maps err through apierr. Internal failures never leak their
// message to the client.
func RespondAPIError(c *gin.Context, err error) {
	status := apierr.StatusOf(err)
	code := apierr.CodeOf(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		RespondError(c, status, code, nil)
		c.Abort()
		return
	}
	RespondError(c, status, code, err)
	c.Abort()
}

func AbortAPIError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apierr.StatusOf(err), ErrorEnvelope{
		Error: APIError{Message: err.Error(), Code: apierr.CodeOf(err)},
	})
}

package httperr

import (
	"net/http"

	"hotel-backoffice/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Respond aborts with the status that matches the error's kind. Internal
// errors never expose their message.
func Respond(c *gin.Context, err error) {
	switch errs.KindOf(err) {
	case errs.KindInvalidRequest:
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.KindNotFound:
		AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.KindConflict:
		AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

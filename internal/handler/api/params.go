package api

import (
	"net/http"

	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidID   = errs.InvalidRequest("invalid id format")
	errMissingUser = errs.InvalidRequest("X-User-ID header is required")
)

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}

package api

import (
	"net/http"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	q queries.RoomQueries
}

func NewRoomHandler(q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{q: q}
}

// @Summary Search available rooms
// @Description Rooms that can host the party for every night of the stay
// @Tags rooms
// @Produce json
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param adults query int false "Adults, default 1"
// @Param children query int false "Children"
// @Param roomType query string false "SINGLE, DOUBLE, DELUXE or SUITE"
// @Param minPrice query string false "Minimum nightly rate"
// @Param maxPrice query string false "Maximum nightly rate"
// @Param minOccupancy query int false "Minimum room capacity"
// @Param sortBy query string false "price, type or number"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "0-based page"
// @Param size query int false "Page size"
// @Success 200 {object} resdto.PageResponse[resdto.RoomResponse]
// @Failure 400 {object} httperr.Response
// @Router /rooms/available [get]
func (h *RoomHandler) SearchAvailable(c *gin.Context) {
	var q reqdto.RoomSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	params, err := q.ToParams()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	page, err := h.q.SearchAvailable(c.Request.Context(), params)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page, resdto.FromRoomView))
}

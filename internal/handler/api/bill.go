package api

import (
	"net/http"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BillHandler struct {
	cmds commands.BillingCommands
	q    queries.BillQueries
}

func NewBillHandler(cmds commands.BillingCommands, q queries.BillQueries) *BillHandler {
	return &BillHandler{cmds: cmds, q: q}
}

// @Summary Generate bill
// @Description Returns the reservation's bill, creating it on first call
// @Tags bills
// @Produce json
// @Param reservationId path string true "Reservation ID"
// @Success 200 {object} resdto.BillResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bills/generate/{reservationId} [post]
func (h *BillHandler) Generate(c *gin.Context) {
	id, ok := pathUUID(c, "reservationId")
	if !ok {
		return
	}
	view, err := h.cmds.Generate(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBillView(view))
}

// @Summary Get bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} resdto.BillResponse
// @Failure 404 {object} httperr.Response
// @Router /bills/{id} [get]
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBillView(view))
}

// @Summary Get bill by reservation
// @Tags bills
// @Produce json
// @Param reservationId path string true "Reservation ID"
// @Success 200 {object} resdto.BillResponse
// @Failure 404 {object} httperr.Response
// @Router /bills/reservation/{reservationId} [get]
func (h *BillHandler) GetByReservation(c *gin.Context) {
	id, ok := pathUUID(c, "reservationId")
	if !ok {
		return
	}
	view, err := h.q.GetByReservationID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBillView(view))
}

// @Summary Pay bill
// @Description Applies a partial or full payment. Overpayment is rejected.
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body reqdto.PaymentRequest true "Payment"
// @Success 200 {object} resdto.BillResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bills/{id}/pay [post]
func (h *BillHandler) Pay(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.ApplyPayment(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBillView(view))
}

// @Summary Add bill item
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body reqdto.BillItemRequest true "Item"
// @Success 201 {object} resdto.BillResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bills/{id}/items [post]
func (h *BillHandler) AddItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.AddItem(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBillView(view))
}

// @Summary Remove bill item
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} resdto.BillResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bills/{id}/items/{itemId} [delete]
func (h *BillHandler) RemoveItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}
	view, err := h.cmds.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBillView(view))
}

// @Summary Update bill tax and discount
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body reqdto.BillMetricsRequest true "Tax rate and/or discount"
// @Success 200 {object} resdto.BillResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bills/{id}/metrics [patch]
func (h *BillHandler) UpdateMetrics(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BillMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateMetrics(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBillView(view))
}

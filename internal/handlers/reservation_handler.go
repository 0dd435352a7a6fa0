package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/lotusspa/salon-scheduler/internal/domain/reservation"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
	"github.com/lotusspa/salon-scheduler/internal/httpresp"
	"github.com/lotusspa/salon-scheduler/internal/middleware"
	ucReservation "github.com/lotusspa/salon-scheduler/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC    *ucReservation.CreateReservation
	cancelUC    *ucReservation.CancelReservation
	completeUC  *ucReservation.CompleteReservation
	historyUC   *ucReservation.ListHistory
	availableUC *ucReservation.ListAvailableBeds
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	cancelUC *ucReservation.CancelReservation,
	completeUC *ucReservation.CompleteReservation,
	historyUC *ucReservation.ListHistory,
	availableUC *ucReservation.ListAvailableBeds,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:    createUC,
		cancelUC:    cancelUC,
		completeUC:  completeUC,
		historyUC:   historyUC,
		availableUC: availableUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	TherapyID  uint      `json:"therapyId" binding:"required"`
	SalonBedID uint      `json:"salonBedId" binding:"required"`
	TimeFrom   time.Time `json:"timeFrom" binding:"required"`
	// Optional: omitted means "derive from the therapy duration".
	TimeTo  *time.Time `json:"timeTo"`
	Comment string     `json:"comment"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	in := ucReservation.CreateReservationInput{
		UserID:     userID,
		TherapyID:  req.TherapyID,
		SalonBedID: req.SalonBedID,
		TimeFrom:   req.TimeFrom,
		Comment:    req.Comment,
	}
	if req.TimeTo != nil {
		in.TimeTo = *req.TimeTo
	}

	res, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, res)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	reservationID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	res, err := h.cancelUC.Execute(c.Request.Context(), userID, reservationID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// COMPLETE (salon owner)
// ======================================================

func (h *ReservationHandler) Complete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	reservationID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	res, err := h.completeUC.Execute(c.Request.Context(), ownerID, reservationID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// HISTORY
// ======================================================

func (h *ReservationHandler) ListHistory(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	page, limit := pageAndLimit(c)

	rows, total, err := h.historyUC.Execute(c.Request.Context(), userID, page, limit)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"reservations": rows,
		"total":        total,
		"pages":        httpresp.TotalPages(total, int64(limit)),
	})
}

// ======================================================
// AVAILABLE BEDS
// ======================================================

func (h *ReservationHandler) AvailableBeds(c *gin.Context) {
	salonID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("timeFrom"))
	if err != nil {
		httperr.BadRequest(c, "invalid_time_range", "timeFrom must be RFC3339")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("timeTo"))
	if err != nil {
		httperr.BadRequest(c, "invalid_time_range", "timeTo must be RFC3339")
		return
	}

	beds, err := h.availableUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID: salonID,
		Window:  domain.Window{From: from, To: to},
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, beds)
}

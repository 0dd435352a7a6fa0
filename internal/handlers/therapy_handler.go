package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lotusspa/salon-scheduler/internal/audit"
	"github.com/lotusspa/salon-scheduler/internal/cache"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
	"github.com/lotusspa/salon-scheduler/internal/httpresp"
	"github.com/lotusspa/salon-scheduler/internal/middleware"
	"github.com/lotusspa/salon-scheduler/internal/models"
)

type TherapyHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewTherapyHandler(db *gorm.DB, cc *cache.Cache, audit *audit.Dispatcher) *TherapyHandler {
	return &TherapyHandler{db: db, cache: cc, audit: audit}
}

type TherapyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
	DurationMin int    `json:"durationMin" binding:"min=0"`
}

func (h *TherapyHandler) Create(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	var req TherapyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	therapy := models.Therapy{
		SalonID:     salon.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	}
	if err := h.db.Create(&therapy).Error; err != nil {
		httperr.Internal(c, "therapy_create_failed", "failed to create therapy")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.SalonDetailKey(salon.ID))
	h.dispatch(c, salon.ID, "therapy_created", therapy.ID)

	httpresp.Created(c, therapy)
}

func (h *TherapyHandler) Update(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	therapyID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req TherapyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	var therapy models.Therapy
	if err := h.db.
		Where("id = ? AND salon_id = ?", therapyID, salon.ID).
		First(&therapy).Error; err != nil {
		httperr.NotFound(c, "therapy_not_found", "therapy not found or not your therapy")
		return
	}

	therapy.Name = req.Name
	therapy.Description = req.Description
	therapy.Price = req.Price
	therapy.DurationMin = req.DurationMin

	if err := h.db.Save(&therapy).Error; err != nil {
		httperr.Internal(c, "therapy_update_failed", "failed to update therapy")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.SalonDetailKey(salon.ID))
	h.dispatch(c, salon.ID, "therapy_updated", therapy.ID)

	httpresp.OK(c, therapy)
}

func (h *TherapyHandler) Delete(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	therapyID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	result := h.db.
		Where("id = ? AND salon_id = ?", therapyID, salon.ID).
		Delete(&models.Therapy{})
	if result.Error != nil {
		httperr.Internal(c, "therapy_delete_failed", "failed to delete therapy")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "therapy_not_found", "therapy not found or not your therapy")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.SalonDetailKey(salon.ID))
	h.dispatch(c, salon.ID, "therapy_deleted", therapyID)

	httpresp.OK(c, gin.H{"deleted": therapyID})
}

func (h *TherapyHandler) dispatch(c *gin.Context, salonID uint, action string, entityID uint) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   action,
		Entity:   "therapy",
		EntityID: &entityID,
	})
}

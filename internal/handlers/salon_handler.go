package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lotusspa/salon-scheduler/internal/audit"
	"github.com/lotusspa/salon-scheduler/internal/cache"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
	"github.com/lotusspa/salon-scheduler/internal/httpresp"
	"github.com/lotusspa/salon-scheduler/internal/middleware"
	"github.com/lotusspa/salon-scheduler/internal/models"
)

const catalogTTL = 60 * time.Second

type SalonHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewSalonHandler(db *gorm.DB, cc *cache.Cache, audit *audit.Dispatcher) *SalonHandler {
	return &SalonHandler{db: db, cache: cc, audit: audit}
}

// ======================================================
// PUBLIC
// ======================================================

type salonListPayload struct {
	Salons []models.Salon `json:"salons"`
	Total  int64          `json:"total"`
	Pages  int64          `json:"pages"`
}

func (h *SalonHandler) ListPublic(c *gin.Context) {
	page, limit := pageAndLimit(c)
	key := cache.SalonListKey(page, limit)

	var payload salonListPayload
	if h.cache.GetJSON(c.Request.Context(), key, &payload) {
		httpresp.OK(c, payload)
		return
	}

	q := h.db.Model(&models.Salon{}).Where("status = ?", models.SalonStatusActivate)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "salon_list_failed", "failed to list salons")
		return
	}

	var salons []models.Salon
	if err := q.
		Order("id ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&salons).Error; err != nil {
		httperr.Internal(c, "salon_list_failed", "failed to list salons")
		return
	}

	payload = salonListPayload{
		Salons: salons,
		Total:  total,
		Pages:  httpresp.TotalPages(total, int64(limit)),
	}
	h.cache.SetJSON(c.Request.Context(), key, payload, catalogTTL)

	httpresp.OK(c, payload)
}

type salonDetailPayload struct {
	Salon     models.Salon         `json:"salon"`
	Branches  []models.SalonBranch `json:"branches"`
	Therapies []models.Therapy     `json:"therapies"`
	Media     []models.SalonMedia  `json:"media"`
}

func (h *SalonHandler) DetailPublic(c *gin.Context) {
	salonID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	key := cache.SalonDetailKey(salonID)
	var payload salonDetailPayload
	if h.cache.GetJSON(c.Request.Context(), key, &payload) {
		httpresp.OK(c, payload)
		return
	}

	var salon models.Salon
	if err := h.db.
		Where("id = ? AND status = ?", salonID, models.SalonStatusActivate).
		First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "salon not found")
		return
	}

	var branches []models.SalonBranch
	h.db.Where("salon_id = ?", salonID).Order("id ASC").Find(&branches)

	var therapies []models.Therapy
	h.db.Where("salon_id = ?", salonID).Order("id ASC").Find(&therapies)

	var media []models.SalonMedia
	h.db.Where("salon_id = ?", salonID).Order("id ASC").Find(&media)

	payload = salonDetailPayload{
		Salon:     salon,
		Branches:  branches,
		Therapies: therapies,
		Media:     media,
	}
	h.cache.SetJSON(c.Request.Context(), key, payload, catalogTTL)

	httpresp.OK(c, payload)
}

func (h *SalonHandler) ListBedsPublic(c *gin.Context) {
	salonID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var beds []models.SalonBed
	err := h.db.
		Joins("INNER JOIN salon_branches ON salon_branches.id = salon_beds.branch_id").
		Where("salon_branches.salon_id = ?", salonID).
		Order("salon_beds.id ASC").
		Find(&beds).Error
	if err != nil {
		httperr.Internal(c, "bed_list_failed", "failed to list beds")
		return
	}

	httpresp.OK(c, beds)
}

// ======================================================
// OWNER
// ======================================================

func (h *SalonHandler) GetMySalon(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}
	httpresp.OK(c, salon)
}

type UpdateSalonRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=ACTIVATE INACTIVATE"`
}

func (h *SalonHandler) UpdateMySalon(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Email != nil {
		salon.Email = *req.Email
	}
	if req.Description != nil {
		salon.Description = *req.Description
	}
	if req.Status != nil {
		salon.Status = *req.Status
	}

	if err := h.db.Save(salon).Error; err != nil {
		httperr.Internal(c, "salon_update_failed", "failed to update salon")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.SalonDetailKey(salon.ID))

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "salon_updated",
		Entity:   "salon",
		EntityID: &salon.ID,
	})

	httpresp.OK(c, salon)
}

// ======================================================
// HELPERS
// ======================================================

func pageAndLimit(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return page, limit
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "invalid id")
		return 0, false
	}
	return uint(v), true
}

// ownedSalon loads the salon of the authenticated salon owner; every
// owner route goes through this scope.
func ownedSalon(c *gin.Context, db *gorm.DB) (*models.Salon, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var salon models.Salon
	if err := db.Where("user_id = ?", userID).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "salon not found")
		return nil, false
	}
	return &salon, true
}

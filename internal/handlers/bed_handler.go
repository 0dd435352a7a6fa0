package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lotusspa/salon-scheduler/internal/audit"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
	"github.com/lotusspa/salon-scheduler/internal/httpresp"
	"github.com/lotusspa/salon-scheduler/internal/middleware"
	"github.com/lotusspa/salon-scheduler/internal/models"
)

type BedHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBedHandler(db *gorm.DB, audit *audit.Dispatcher) *BedHandler {
	return &BedHandler{db: db, audit: audit}
}

type AddBedRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create adds a bed to one of the owner's branches. The branch must
// belong to the owner's salon.
func (h *BedHandler) Create(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	branchID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req AddBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	var branch models.SalonBranch
	if err := h.db.
		Where("id = ? AND salon_id = ?", branchID, salon.ID).
		First(&branch).Error; err != nil {
		httperr.NotFound(c, "branch_not_found", "branch not found or not your branch")
		return
	}

	bed := models.SalonBed{
		BranchID: branch.ID,
		Name:     req.Name,
		Status:   models.SalonStatusActivate,
	}
	if err := h.db.Create(&bed).Error; err != nil {
		httperr.Internal(c, "bed_create_failed", "failed to create bed")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "bed_created",
		Entity:   "salon_bed",
		EntityID: &bed.ID,
	})

	httpresp.Created(c, bed)
}

func (h *BedHandler) Delete(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	bedID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	result := h.db.Exec(`
        DELETE FROM salon_beds
        USING salon_branches
        WHERE salon_beds.branch_id = salon_branches.id
          AND salon_branches.salon_id = ?
          AND salon_beds.id = ?
    `, salon.ID, bedID)
	if result.Error != nil {
		httperr.Internal(c, "bed_delete_failed", "failed to delete bed")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "bed_not_found", "bed not found or not your salon bed")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "bed_deleted",
		Entity:   "salon_bed",
		EntityID: &bedID,
	})

	httpresp.OK(c, gin.H{"deleted": bedID})
}

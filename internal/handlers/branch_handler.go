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

type BranchHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewBranchHandler(db *gorm.DB, cc *cache.Cache, audit *audit.Dispatcher) *BranchHandler {
	return &BranchHandler{db: db, cache: cc, audit: audit}
}

type AddBranchRequest struct {
	Address string `json:"address" binding:"required"`
}

func (h *BranchHandler) Create(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	var req AddBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	branch := models.SalonBranch{
		SalonID: salon.ID,
		Address: req.Address,
	}
	if err := h.db.Create(&branch).Error; err != nil {
		httperr.Internal(c, "branch_create_failed", "failed to create branch")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.SalonDetailKey(salon.ID))

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "branch_created",
		Entity:   "salon_branch",
		EntityID: &branch.ID,
	})

	httpresp.Created(c, branch)
}

func (h *BranchHandler) Delete(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	branchID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	result := h.db.
		Where("id = ? AND salon_id = ?", branchID, salon.ID).
		Delete(&models.SalonBranch{})
	if result.Error != nil {
		httperr.Internal(c, "branch_delete_failed", "failed to delete branch")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "branch_not_found", "branch not found or not your branch")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.SalonDetailKey(salon.ID))

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "branch_deleted",
		Entity:   "salon_branch",
		EntityID: &branchID,
	})

	httpresp.OK(c, gin.H{"deleted": branchID})
}

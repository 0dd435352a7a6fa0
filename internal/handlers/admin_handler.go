package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lotusspa/salon-scheduler/internal/httperr"
	"github.com/lotusspa/salon-scheduler/internal/httpresp"
	"github.com/lotusspa/salon-scheduler/internal/middleware"
	"github.com/lotusspa/salon-scheduler/internal/models"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := pageAndLimit(c)

	var total int64
	if err := h.db.Model(&models.User{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "user_list_failed", "failed to list users")
		return
	}

	var users []models.User
	if err := h.db.
		Order("id ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error; err != nil {
		httperr.Internal(c, "user_list_failed", "failed to list users")
		return
	}

	httpresp.List(c, users, total, int64(limit))
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	// An admin cannot delete itself; everything else cascades.
	self := c.MustGet(middleware.ContextUserID).(uint)
	if userID == self {
		httperr.BadRequest(c, "cannot_delete_self", "cannot delete your own account")
		return
	}

	result := h.db.Delete(&models.User{}, userID)
	if result.Error != nil {
		httperr.Internal(c, "user_delete_failed", "failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	httpresp.OK(c, gin.H{"deleted": userID})
}

func (h *AdminHandler) ListSalons(c *gin.Context) {
	page, limit := pageAndLimit(c)

	var total int64
	if err := h.db.Model(&models.Salon{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "salon_list_failed", "failed to list salons")
		return
	}

	var salons []models.Salon
	if err := h.db.
		Order("id ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&salons).Error; err != nil {
		httperr.Internal(c, "salon_list_failed", "failed to list salons")
		return
	}

	httpresp.List(c, salons, total, int64(limit))
}

func (h *AdminHandler) DeleteSalon(c *gin.Context) {
	salonID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	result := h.db.Delete(&models.Salon{}, salonID)
	if result.Error != nil {
		httperr.Internal(c, "salon_delete_failed", "failed to delete salon")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "salon_not_found", "salon not found")
		return
	}

	httpresp.OK(c, gin.H{"deleted": salonID})
}

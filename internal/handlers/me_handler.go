package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lotusspa/salon-scheduler/internal/audit"
	"github.com/lotusspa/salon-scheduler/internal/config"
	"github.com/lotusspa/salon-scheduler/internal/domain/account"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
	"github.com/lotusspa/salon-scheduler/internal/httpresp"
	"github.com/lotusspa/salon-scheduler/internal/middleware"
	"github.com/lotusspa/salon-scheduler/internal/models"
)

type MeHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewMeHandler(db *gorm.DB, cfg *config.Config, audit *audit.Dispatcher) *MeHandler {
	return &MeHandler{db: db, config: cfg, audit: audit}
}

// currentUser loads the token's subject. A valid token whose account
// has since been deleted is a 404, not a server fault.
func (h *MeHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "user not found")
		} else {
			httperr.Internal(c, "internal_error", "internal error")
		}
		return nil, false
	}
	return &user, true
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	httpresp.OK(c, userPayload(user))
}

type UpdateMeRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Gender   *string `json:"gender" binding:"omitempty,oneof=MALE FEMALE"`
	Avatar   *string `json:"avatar"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := h.db.Save(user).Error; err != nil {
		httperr.Internal(c, "update_failed", "failed to update profile")
		return
	}

	httpresp.OK(c, userPayload(user))
}

// Promote is the one-way CUSTOMER -> SALON_OWNER transition. The empty
// owned salon is created in the same transaction and the token is
// re-issued so the new role takes effect immediately.
func (h *MeHandler) Promote(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	newRole, err := account.Promote(account.Role(user.Role))
	if err != nil {
		httperr.BadRequest(c, "not_customer", "this account is not customer role")
		return
	}

	var salon models.Salon
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ? AND role = ?", user.ID, string(account.RoleCustomer)).
			Update("role", string(newRole)).Error; err != nil {
			return err
		}

		salon = models.Salon{
			UserID: user.ID,
			Name:   user.FullName,
			Status: models.SalonStatusActivate,
		}
		return tx.Create(&salon).Error
	})
	if err != nil {
		httperr.Internal(c, "promote_failed", "failed to promote account")
		return
	}

	user.Role = string(newRole)

	token, err := GenerateToken(h.config, user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "failed to generate token")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &user.ID,
		Action:   "user_promoted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, gin.H{
		"user":  userPayload(user),
		"salon": salon,
		"token": token,
	})
}

package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lotusspa/salon-scheduler/internal/audit"
	"github.com/lotusspa/salon-scheduler/internal/cache"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
	"github.com/lotusspa/salon-scheduler/internal/httpresp"
	"github.com/lotusspa/salon-scheduler/internal/middleware"
	"github.com/lotusspa/salon-scheduler/internal/models"
	"github.com/lotusspa/salon-scheduler/internal/storage"
)

const maxUploadBytes = 10 << 20 // 10 MB

type MediaHandler struct {
	db    *gorm.DB
	store *storage.MediaStore
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewMediaHandler(
	db *gorm.DB,
	store *storage.MediaStore,
	cc *cache.Cache,
	audit *audit.Dispatcher,
) *MediaHandler {
	return &MediaHandler{db: db, store: store, cache: cc, audit: audit}
}

// Upload accepts a multipart "file" image, re-encodes it to webp and
// stores it in the media bucket.
func (h *MediaHandler) Upload(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "file field is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "file exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "failed to read upload")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "upload_failed", "failed to read upload")
		return
	}

	encoded, err := storage.EncodeWebP(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "file is not a supported image")
		return
	}

	url, key, err := h.store.PutImage(c.Request.Context(), salon.ID, encoded)
	if err != nil {
		httperr.Internal(c, "upload_failed", "failed to store media")
		return
	}

	media := models.SalonMedia{
		SalonID:   salon.ID,
		URL:       url,
		ObjectKey: key,
		MediaType: models.MediaTypeImage,
	}
	if err := h.db.Create(&media).Error; err != nil {
		httperr.Internal(c, "media_create_failed", "failed to save media")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.SalonDetailKey(salon.ID))

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "media_uploaded",
		Entity:   "salon_media",
		EntityID: &media.ID,
	})

	httpresp.Created(c, media)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	mediaID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var media models.SalonMedia
	if err := h.db.
		Where("id = ? AND salon_id = ?", mediaID, salon.ID).
		First(&media).Error; err != nil {
		httperr.NotFound(c, "media_not_found", "media not found or not your media")
		return
	}

	if err := h.db.Delete(&media).Error; err != nil {
		httperr.Internal(c, "media_delete_failed", "failed to delete media")
		return
	}

	// The DB row is the source of truth; a leftover object is only
	// storage garbage, so its deletion failure is not surfaced.
	_ = h.store.Delete(c.Request.Context(), media.ObjectKey)

	h.cache.Invalidate(c.Request.Context(), cache.SalonDetailKey(salon.ID))

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   &userID,
		Action:   "media_deleted",
		Entity:   "salon_media",
		EntityID: &mediaID,
	})

	httpresp.OK(c, gin.H{"deleted": mediaID})
}

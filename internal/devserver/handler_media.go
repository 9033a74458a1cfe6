package devserver

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"zanara/internal/config"
	"zanara/internal/logger"
	"zanara/internal/models"
	"zanara/internal/services/dto"
	"zanara/pkg/apperrors"
)

type MediaHandler struct {
	cfg   *config.Config
	store Store
}

func NewMediaHandler(cfg *config.Config, store Store) *MediaHandler {
	return &MediaHandler{cfg: cfg, store: store}
}

func validMediaKind(kind string) bool {
	switch kind {
	case "photo", "video", "picture", "cover":
		return true
	}
	return false
}

func multiSlot(kind string) bool {
	return kind == "photo" || kind == "video"
}

// Upload stores an uploaded batch under the "files" multipart field. Each
// file passes or fails independently; one bad file never sinks the batch.
func (h *MediaHandler) Upload(c *gin.Context) {
	kind := c.Param("kind")
	if !validMediaKind(kind) {
		respondError(c, apperrors.NewBadRequestError("unknown media kind"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid multipart body"))
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		respondError(c, apperrors.NewBadRequestError("no files provided"))
		return
	}

	profile, err := h.store.ProfileByUserID(c.GetString(ctxUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	result := dto.UploadResult{Accepted: []models.MediaRef{}}
	for i, header := range files {
		if !multiSlot(kind) && i > 0 {
			result.Rejected = append(result.Rejected, dto.UploadFailure{
				FileName: header.Filename,
				Reason:   "only one file allowed for this slot",
			})
			continue
		}
		ref, reason := h.saveFile(c.GetString(ctxUserID), header)
		if reason != "" {
			result.Rejected = append(result.Rejected, dto.UploadFailure{
				FileName: header.Filename,
				Reason:   reason,
			})
			continue
		}
		result.Accepted = append(result.Accepted, *ref)

		switch kind {
		case "photo":
			profile.Photos = append(profile.Photos, *ref)
		case "video":
			profile.Videos = append(profile.Videos, *ref)
		case "picture":
			profile.ProfilePicture = ref.Path
		case "cover":
			profile.CoverPhoto = ref.Path
		}
	}

	if len(result.Accepted) > 0 {
		if err := h.store.SaveProfile(profile); err != nil {
			respondError(c, err)
			return
		}
	}

	logger.Debug("upload processed",
		"kind", kind, "accepted", len(result.Accepted), "rejected", len(result.Rejected))
	c.JSON(http.StatusOK, result)
}

// saveFile writes one upload to local disk, returning a rejection reason
// instead of an error so the caller can report it per file.
func (h *MediaHandler) saveFile(userID string, header *multipart.FileHeader) (*models.MediaRef, string) {
	if header.Size > h.cfg.Upload.MaxSize {
		return nil, fmt.Sprintf("file exceeds %d byte limit", h.cfg.Upload.MaxSize)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}
	if !h.allowedType(contentType) {
		return nil, fmt.Sprintf("unsupported content type %q", contentType)
	}

	src, err := header.Open()
	if err != nil {
		return nil, "unreadable file"
	}
	defer src.Close()

	id := uuid.New().String()
	name := id + filepath.Ext(header.Filename)
	dir := filepath.Join(h.cfg.Storage.BasePath, userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.WithError(err).Error("upload dir creation failed")
		return nil, "storage failure"
	}
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		logger.WithError(err).Error("upload write failed")
		return nil, "storage failure"
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return nil, "storage failure"
	}

	return &models.MediaRef{
		ID:   id,
		Path: strings.TrimSuffix(h.cfg.Storage.BaseURL, "/") + "/" + userID + "/" + name,
	}, ""
}

func (h *MediaHandler) allowedType(contentType string) bool {
	for _, t := range h.cfg.Upload.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

// Remove deletes one media item. A missing id yields 404; clients treat
// that as already gone.
func (h *MediaHandler) Remove(c *gin.Context) {
	kind := c.Param("kind")
	if !validMediaKind(kind) {
		respondError(c, apperrors.NewBadRequestError("unknown media kind"))
		return
	}
	mediaID := c.Param("id")

	profile, err := h.store.ProfileByUserID(c.GetString(ctxUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	removed := false
	switch kind {
	case "photo":
		profile.Photos, removed = dropRef(profile.Photos, mediaID)
	case "video":
		profile.Videos, removed = dropRef(profile.Videos, mediaID)
	case "picture":
		if profile.ProfilePicture != "" {
			profile.ProfilePicture = ""
			removed = true
		}
	case "cover":
		if profile.CoverPhoto != "" {
			profile.CoverPhoto = ""
			removed = true
		}
	}
	if !removed {
		respondError(c, apperrors.NotFound("media", nil))
		return
	}
	if err := h.store.SaveProfile(profile); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func dropRef(refs []models.MediaRef, id string) ([]models.MediaRef, bool) {
	out := refs[:0]
	removed := false
	for _, r := range refs {
		if r.ID == id {
			removed = true
			continue
		}
		out = append(out, r)
	}
	return out, removed
}

// Reorder replaces the portfolio order wholesale. Ids must match the
// stored set exactly; a stale list is rejected so the client re-syncs.
func (h *MediaHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	profile, err := h.store.ProfileByUserID(c.GetString(ctxUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	photos, ok := reorderExact(profile.Photos, req.PhotoIDs)
	if !ok {
		respondError(c, apperrors.New(apperrors.CodeConflict, "media", "photo order does not match stored portfolio", http.StatusConflict))
		return
	}
	videos, ok := reorderExact(profile.Videos, req.VideoIDs)
	if !ok {
		respondError(c, apperrors.New(apperrors.CodeConflict, "media", "video order does not match stored portfolio", http.StatusConflict))
		return
	}

	profile.Photos = photos
	profile.Videos = videos
	if err := h.store.SaveProfile(profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// reorderExact permutes refs into the order of ids; fails unless ids is a
// permutation of the stored set.
func reorderExact(refs []models.MediaRef, ids []string) ([]models.MediaRef, bool) {
	if len(ids) != len(refs) {
		return nil, false
	}
	byID := make(map[string]models.MediaRef, len(refs))
	for _, r := range refs {
		byID[r.ID] = r
	}
	out := make([]models.MediaRef, 0, len(ids))
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			return nil, false
		}
		out = append(out, r)
		delete(byID, id)
	}
	return out, true
}

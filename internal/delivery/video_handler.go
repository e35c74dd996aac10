package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/brainsync/catalog/internal/domain"
	"github.com/brainsync/catalog/internal/models"
	"github.com/brainsync/catalog/internal/ports"
	"github.com/go-chi/chi/v5"
)

type VideoHandler struct {
	catalog ports.CatalogService
	log     *logger.ZapLogger
}

func NewVideoHandler(catalog ports.CatalogService, log *logger.ZapLogger) *VideoHandler {
	return &VideoHandler{
		catalog: catalog,
		log:     log,
	}
}

// GET /api/videos
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.catalog.ListAll(r.Context())
	if err != nil {
		h.fail(w, "Error fetching videos", err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

// GET /api/videos/category/{category}
func (h *VideoHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	videos, err := h.catalog.ListByCategory(r.Context(), category)
	if err != nil {
		h.fail(w, "Error fetching videos by category", err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

// GET /api/videos/{id}
func (h *VideoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	video, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Video not found")
			return
		}
		h.fail(w, "Error fetching video", err)
		return
	}
	writeJSON(w, http.StatusOK, video)
}

// POST /api/videos
//
// Обязательность полей держит клиент, сервер пишет как есть.
func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Category     string `json:"category"`
		Instructor   string `json:"instructor"`
		InstructorID string `json:"instructorId"`
		VideoURL     string `json:"videoUrl"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}

	video := &models.Video{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Instructor:   req.Instructor,
		InstructorID: req.InstructorID,
		VideoURL:     req.VideoURL,
	}

	created, err := h.catalog.Create(r.Context(), video)
	if err != nil {
		h.fail(w, "Error creating video", err)
		return
	}

	fields := map[string]any{
		"videoID":  created.ID,
		"category": created.Category,
	}
	if identity := IdentityFromContext(r.Context()); identity != nil {
		fields["uid"] = identity.UID
		fields["role"] = identity.Role
	}
	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "video created",
		Fields:  fields,
	})

	writeJSON(w, http.StatusCreated, created)
}

// DELETE /api/videos/{id}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	video, err := h.catalog.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Video not found")
			return
		}
		h.fail(w, "Error deleting video", err)
		return
	}

	fields := map[string]any{
		"videoID": video.ID,
	}
	if identity := IdentityFromContext(r.Context()); identity != nil {
		fields["uid"] = identity.UID
		if identity.UID != video.InstructorID {
			// владение только совещательное, не запрещаем
			fields["ownerMismatch"] = true
		}
	}
	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "video deleted",
		Fields:  fields,
	})

	writeMessage(w, http.StatusOK, "Video deleted successfully")
}

func (h *VideoHandler) fail(w http.ResponseWriter, msg string, err error) {
	h.log.Log(logger.LogEntry{
		Level:   "error",
		Message: msg,
		Error:   err,
	})
	// наружу только общий текст, без внутренней ошибки
	writeMessage(w, http.StatusInternalServerError, msg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

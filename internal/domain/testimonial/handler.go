package testimonial

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"companyprofile/internal/asset"
	"companyprofile/internal/media"
	"companyprofile/internal/pkg/metrics"
	"companyprofile/internal/pkg/response"
)

type Handler struct {
	kind      Kind
	repo      *Repository
	assets    *asset.Coordinator[*Testimonial]
	maxUpload int64
}

func NewHandler(kind Kind, repo *Repository, store media.Store, m *metrics.Metrics, maxUpload int64) *Handler {
	return &Handler{
		kind: kind,
		repo: repo,
		assets: asset.NewCoordinator[*Testimonial](repo, store, asset.Config{
			Resource: kind.Prefix,
			Prefix:   kind.Prefix,
			Folder:   kind.Folder,
		}, m),
		maxUpload: maxUpload,
	}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("table", h.kind.Table).Msg("Failed to fetch " + h.kind.Plural)
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch "+h.kind.Plural, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create requires the image and every text field.
func (h *Handler) Create(c *gin.Context) {
	msg := h.messages("create")

	file, err := asset.FormImage(c, "image", h.maxUpload)
	if err != nil {
		asset.WriteError(c, err, msg)
		return
	}
	if file == nil {
		response.Error(c, http.StatusBadRequest, "Image file is required")
		return
	}

	fields, err := bindFields(c)
	if err != nil || !fields.complete() {
		response.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}

	rec := &Testimonial{}
	rec.Merge(fields)

	res, err := h.assets.Create(c.Request.Context(), file, rec)
	if err != nil {
		h.logFailure(err, msg)
		asset.WriteError(c, err, msg)
		return
	}
	c.JSON(http.StatusCreated, res.Record)
}

// Update keeps every field that is not supplied.
func (h *Handler) Update(c *gin.Context) {
	msg := h.messages("update")

	id, ok := asset.ParamID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, msg.NotFound)
		return
	}

	file, err := asset.FormImage(c, "image", h.maxUpload)
	if err != nil {
		asset.WriteError(c, err, msg)
		return
	}

	fields, err := bindFields(c)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	res, err := h.assets.Update(c.Request.Context(), id, file, func(t *Testimonial) {
		t.Merge(fields)
	})
	if err != nil {
		h.logFailure(err, msg)
		asset.WriteError(c, err, msg)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  h.kind.title() + " updated successfully",
		h.kind.Key: res.Record,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	msg := h.messages("delete")

	id, ok := asset.ParamID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, msg.NotFound)
		return
	}

	res, err := h.assets.Delete(c.Request.Context(), id)
	if err != nil {
		h.logFailure(err, msg)
		asset.WriteError(c, err, msg)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  h.kind.title() + " deleted successfully",
		h.kind.Key: res.Record,
	})
}

func (h *Handler) messages(action string) asset.Messages {
	return asset.Messages{
		NotFound: h.kind.title() + " not found",
		Failed:   "Failed to " + action + " " + h.kind.Singular,
	}
}

func (h *Handler) logFailure(err error, msg asset.Messages) {
	if !asset.IsClientError(err) {
		log.Error().Err(err).Str("table", h.kind.Table).Msg(msg.Failed)
	}
}

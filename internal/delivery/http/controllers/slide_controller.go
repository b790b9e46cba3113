package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"slidedeck/internal/delivery/http/helpers"
	"slidedeck/internal/delivery/http/middleware"
	"slidedeck/internal/domain"
)

// SlideController handles the slide-scoped routes. Every operation is
// guarded by ownership of the parent presentation.
type SlideController struct {
	Logger  *slog.Logger
	Service domain.DeckService
}

func NewSlideController(logger *slog.Logger, svc domain.DeckService) *SlideController {
	return &SlideController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSlideRequest is the request body for POST /presentations/{presentationID}/slides.
// All fields are optional; an omitted order_index is assigned max+1 (1 for
// the first slide).
type CreateSlideRequest struct {
	OrderIndex *int            `json:"order_index"`
	LayoutType *string         `json:"layout_type"`
	Title      *string         `json:"title"`
	Content    *string         `json:"content"`
	Notes      *string         `json:"notes"`
	RawData    json.RawMessage `json:"raw_data"`
}

// Validate implements Validator. An explicit order_index must be positive.
func (c CreateSlideRequest) Validate() []string {
	var errs []string
	if c.OrderIndex != nil && *c.OrderIndex < 1 {
		errs = append(errs, "order_index must be positive")
	}
	return errs
}

// CreateSlideSuccessResponse is the success envelope for POST /presentations/{presentationID}/slides (201).
type CreateSlideSuccessResponse struct {
	Success bool              `json:"success"`
	Data    *domain.Slide     `json:"data"`
	Error   *helpers.APIError `json:"error"`
}

// CreateSlide godoc
// @Summary Create a slide
// @Description Creates a slide in a presentation owned by the authenticated user. The slide insert and the parent's slide_count refresh run in one transaction.
// @Tags slides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param presentationID path string true "Presentation ID"
// @Param slide body CreateSlideRequest true "Slide data (all fields optional; send {} for defaults)"
// @Success 201 {object} controllers.CreateSlideSuccessResponse "data contains the created slide"
// @Failure 400 {object} helpers.APIResponse "error.code: BAD_REQUEST"
// @Failure 401 {object} helpers.APIResponse "error.code: UNAUTHORIZED"
// @Failure 404 {object} helpers.APIResponse "error.code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "error.code: INTERNAL_ERROR"
// @Router /presentations/{presentationID}/slides [post]
func (c *SlideController) CreateSlide(w http.ResponseWriter, r *http.Request) {
	presentationID := r.PathValue("presentationID")
	if presentationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID")
		return
	}
	var req CreateSlideRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	slide, err := c.Service.CreateSlide(r.Context(), presentationID, userID, req.OrderIndex, req.LayoutType, req.Title, req.Content, req.Notes, req.RawData)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, slide)
}

// UpdateSlideRequest is the request body for PATCH /presentations/{presentationID}/slides/{slideID}.
// At least one field must be supplied; omitted fields are unchanged.
type UpdateSlideRequest struct {
	OrderIndex *int            `json:"order_index"`
	LayoutType *string         `json:"layout_type"`
	Title      *string         `json:"title"`
	Content    *string         `json:"content"`
	Notes      *string         `json:"notes"`
	RawData    json.RawMessage `json:"raw_data"`
}

// Validate implements Validator. Requires at least one updatable field.
func (u UpdateSlideRequest) Validate() []string {
	var errs []string
	if u.OrderIndex == nil && u.LayoutType == nil && u.Title == nil && u.Content == nil && u.Notes == nil && u.RawData == nil {
		errs = append(errs, "at least one field must be supplied")
	}
	if u.OrderIndex != nil && *u.OrderIndex < 1 {
		errs = append(errs, "order_index must be positive")
	}
	return errs
}

// UpdateSlideSuccessResponse is the success envelope for PATCH /presentations/{presentationID}/slides/{slideID} (200).
type UpdateSlideSuccessResponse struct {
	Success bool              `json:"success"`
	Data    *domain.Slide     `json:"data"`
	Error   *helpers.APIError `json:"error"`
}

// UpdateSlide godoc
// @Summary Update a slide
// @Description Applies the supplied fields to a slide, addressed by both slide and presentation id. A slide that exists under a different presentation returns 404, as does a presentation not owned by the caller.
// @Tags slides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param presentationID path string true "Presentation ID"
// @Param slideID path string true "Slide ID"
// @Param body body UpdateSlideRequest true "Fields to update (at least one)"
// @Success 200 {object} controllers.UpdateSlideSuccessResponse "data contains the updated slide"
// @Failure 400 {object} helpers.APIResponse "error.code: BAD_REQUEST"
// @Failure 401 {object} helpers.APIResponse "error.code: UNAUTHORIZED"
// @Failure 404 {object} helpers.APIResponse "error.code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "error.code: INTERNAL_ERROR"
// @Router /presentations/{presentationID}/slides/{slideID} [patch]
func (c *SlideController) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	presentationID := r.PathValue("presentationID")
	slideID := r.PathValue("slideID")
	if presentationID == "" || slideID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID or slideID")
		return
	}
	var req UpdateSlideRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	slide, err := c.Service.UpdateSlide(r.Context(), slideID, presentationID, userID, req.OrderIndex, req.LayoutType, req.Title, req.Content, req.Notes, req.RawData)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slide)
}

// DeleteSlideSuccessResponse is the success envelope for DELETE /presentations/{presentationID}/slides/{slideID} (200).
type DeleteSlideSuccessResponse struct {
	Success bool              `json:"success"`
	Error   *helpers.APIError `json:"error"`
}

// DeleteSlide godoc
// @Summary Delete a slide
// @Description Deletes a slide, addressed by both slide and presentation id. The delete and the parent's slide_count refresh run in one transaction.
// @Tags slides
// @Produce json
// @Security BearerAuth
// @Param presentationID path string true "Presentation ID"
// @Param slideID path string true "Slide ID"
// @Success 200 {object} controllers.DeleteSlideSuccessResponse "success with no data"
// @Failure 401 {object} helpers.APIResponse "error.code: UNAUTHORIZED"
// @Failure 404 {object} helpers.APIResponse "error.code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "error.code: INTERNAL_ERROR"
// @Router /presentations/{presentationID}/slides/{slideID} [delete]
func (c *SlideController) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	presentationID := r.PathValue("presentationID")
	slideID := r.PathValue("slideID")
	if presentationID == "" || slideID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID or slideID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteSlide(r.Context(), slideID, presentationID, userID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// ListSlidesResponse is the data payload for GET /presentations/{presentationID}/slides.
type ListSlidesResponse struct {
	Items []*domain.Slide `json:"items"`
	Total int             `json:"total"`
}

// ListSlidesSuccessResponse is the success envelope for GET /presentations/{presentationID}/slides (200).
type ListSlidesSuccessResponse struct {
	Success bool               `json:"success"`
	Data    ListSlidesResponse `json:"data"`
	Error   *helpers.APIError  `json:"error"`
}

// ListSlides godoc
// @Summary List slides
// @Description Returns every slide of a presentation owned by the authenticated user, with a count. No ordering is applied; callers sort on order_index.
// @Tags slides
// @Produce json
// @Security BearerAuth
// @Param presentationID path string true "Presentation ID"
// @Success 200 {object} controllers.ListSlidesSuccessResponse "data contains items and total"
// @Failure 401 {object} helpers.APIResponse "error.code: UNAUTHORIZED"
// @Failure 404 {object} helpers.APIResponse "error.code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "error.code: INTERNAL_ERROR"
// @Router /presentations/{presentationID}/slides [get]
func (c *SlideController) ListSlides(w http.ResponseWriter, r *http.Request) {
	presentationID := r.PathValue("presentationID")
	if presentationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	slides, err := c.Service.ListSlides(r.Context(), presentationID, userID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListSlidesResponse{
		Items: slides,
		Total: len(slides),
	})
}

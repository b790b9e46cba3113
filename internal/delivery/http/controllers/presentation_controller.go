package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"slidedeck/internal/delivery/http/helpers"
	"slidedeck/internal/delivery/http/middleware"
	"slidedeck/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// PresentationController handles the presentation-scoped routes.
type PresentationController struct {
	Logger  *slog.Logger
	Service domain.DeckService
}

func NewPresentationController(logger *slog.Logger, svc domain.DeckService) *PresentationController {
	return &PresentationController{
		Logger:  logger,
		Service: svc,
	}
}

// writeDomainError maps domain errors to the API error envelope and logs
// anything unexpected.
func writeDomainError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "presentation not found")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid input")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// CreatePresentationRequest is the request body for POST /presentations.
type CreatePresentationRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Theme       *string `json:"theme"`
	AspectRatio *string `json:"aspect_ratio"`
}

// Validate implements Validator. Title is required and must be non-empty.
func (c CreatePresentationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

// CreatePresentationSuccessResponse is the success envelope for POST /presentations (201).
type CreatePresentationSuccessResponse struct {
	Success bool                 `json:"success"`
	Data    *domain.Presentation `json:"data"`
	Error   *helpers.APIError    `json:"error"`
}

// CreatePresentation godoc
// @Summary Create a presentation
// @Description Creates a presentation owned by the authenticated user. The stored record starts with slide_count 0 and server-set timestamps.
// @Tags presentations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param presentation body CreatePresentationRequest true "Presentation data (title required)"
// @Success 201 {object} controllers.CreatePresentationSuccessResponse "data contains the created presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: BAD_REQUEST"
// @Failure 401 {object} helpers.APIResponse "error.code: UNAUTHORIZED"
// @Failure 500 {object} helpers.APIResponse "error.code: INTERNAL_ERROR"
// @Router /presentations [post]
func (c *PresentationController) CreatePresentation(w http.ResponseWriter, r *http.Request) {
	var req CreatePresentationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	presentation, err := c.Service.CreatePresentation(r.Context(), userID, req.Title, req.Description, req.Theme, req.AspectRatio)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, presentation)
}

// UpdatePresentationRequest is the request body for PATCH /presentations/{presentationID}.
// At least one field must be supplied; omitted fields are unchanged.
type UpdatePresentationRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Theme       *string `json:"theme"`
	AspectRatio *string `json:"aspect_ratio"`
	SlideCount  *int    `json:"slide_count"`
}

// Validate implements Validator. Requires at least one updatable field.
func (u UpdatePresentationRequest) Validate() []string {
	var errs []string
	if u.Title == nil && u.Description == nil && u.Theme == nil && u.AspectRatio == nil && u.SlideCount == nil {
		errs = append(errs, "at least one field must be supplied")
	}
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title must not be empty")
	}
	if u.SlideCount != nil && *u.SlideCount < 0 {
		errs = append(errs, "slide_count must not be negative")
	}
	return errs
}

// UpdatePresentationSuccessResponse is the success envelope for PATCH /presentations/{presentationID} (200).
type UpdatePresentationSuccessResponse struct {
	Success bool                 `json:"success"`
	Data    *domain.Presentation `json:"data"`
	Error   *helpers.APIError    `json:"error"`
}

// UpdatePresentation godoc
// @Summary Update a presentation
// @Description Applies the supplied fields to a presentation owned by the authenticated user and refreshes its update timestamp. A presentation that does not exist and one owned by another user both return 404.
// @Tags presentations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param presentationID path string true "Presentation ID"
// @Param body body UpdatePresentationRequest true "Fields to update (at least one)"
// @Success 200 {object} controllers.UpdatePresentationSuccessResponse "data contains the updated presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: BAD_REQUEST"
// @Failure 401 {object} helpers.APIResponse "error.code: UNAUTHORIZED"
// @Failure 404 {object} helpers.APIResponse "error.code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "error.code: INTERNAL_ERROR"
// @Router /presentations/{presentationID} [patch]
func (c *PresentationController) UpdatePresentation(w http.ResponseWriter, r *http.Request) {
	presentationID := r.PathValue("presentationID")
	if presentationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID")
		return
	}
	var req UpdatePresentationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	presentation, err := c.Service.UpdatePresentation(r.Context(), presentationID, userID, req.Title, req.Description, req.Theme, req.AspectRatio, req.SlideCount)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, presentation)
}

// ListPresentationsResponse is the data payload for GET /presentations.
type ListPresentationsResponse struct {
	Items []*domain.Presentation `json:"items"`
	Total int                    `json:"total"`
}

// ListPresentationsSuccessResponse is the success envelope for GET /presentations (200).
type ListPresentationsSuccessResponse struct {
	Success bool                      `json:"success"`
	Data    ListPresentationsResponse `json:"data"`
	Error   *helpers.APIError         `json:"error"`
}

// ListPresentations godoc
// @Summary List presentations
// @Description Returns every presentation owned by the authenticated user, with a count. Unpaginated and unfiltered.
// @Tags presentations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListPresentationsSuccessResponse "data contains items and total"
// @Failure 401 {object} helpers.APIResponse "error.code: UNAUTHORIZED"
// @Failure 500 {object} helpers.APIResponse "error.code: INTERNAL_ERROR"
// @Router /presentations [get]
func (c *PresentationController) ListPresentations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	presentations, err := c.Service.ListPresentations(r.Context(), userID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListPresentationsResponse{
		Items: presentations,
		Total: len(presentations),
	})
}

// SharePresentationRequest is the request body for POST /presentations/{presentationID}/share.
type SharePresentationRequest struct {
	Emails []string `json:"emails"`
}

// Validate implements Validator. Requires at least one well-formed address.
func (s SharePresentationRequest) Validate() []string {
	var errs []string
	if len(s.Emails) == 0 {
		errs = append(errs, "emails is required")
	}
	for _, e := range s.Emails {
		if !emailRegex.MatchString(strings.TrimSpace(e)) {
			errs = append(errs, "invalid email: "+e)
		}
	}
	return errs
}

// SharePresentationResponse is the data payload for POST /presentations/{presentationID}/share.
type SharePresentationResponse struct {
	Sent   int      `json:"sent"`
	Failed []string `json:"failed"`
}

// SharePresentationSuccessResponse is the success envelope for POST /presentations/{presentationID}/share (200).
type SharePresentationSuccessResponse struct {
	Success bool                      `json:"success"`
	Data    SharePresentationResponse `json:"data"`
	Error   *helpers.APIError         `json:"error"`
}

// SharePresentation godoc
// @Summary Share a presentation by email
// @Description Sends a share notification to each address. Only the owner can share; a presentation that does not exist and one owned by another user both return 404.
// @Tags presentations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param presentationID path string true "Presentation ID"
// @Param body body SharePresentationRequest true "Recipient addresses"
// @Success 200 {object} controllers.SharePresentationSuccessResponse "data contains sent count and failed addresses"
// @Failure 400 {object} helpers.APIResponse "error.code: BAD_REQUEST"
// @Failure 401 {object} helpers.APIResponse "error.code: UNAUTHORIZED"
// @Failure 404 {object} helpers.APIResponse "error.code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "error.code: INTERNAL_ERROR"
// @Router /presentations/{presentationID}/share [post]
func (c *PresentationController) SharePresentation(w http.ResponseWriter, r *http.Request) {
	presentationID := r.PathValue("presentationID")
	if presentationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID")
		return
	}
	var req SharePresentationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sent, failed, err := c.Service.SharePresentation(r.Context(), presentationID, userID, req.Emails)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if failed == nil {
		failed = []string{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SharePresentationResponse{Sent: sent, Failed: failed})
}

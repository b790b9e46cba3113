package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Presentation represents one deck owned by exactly one user.
// SlideCount is denormalized and refreshed transactionally whenever a slide
// is created or deleted.
// swagger:model Presentation
type Presentation struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Theme       *string   `json:"theme"`
	AspectRatio *string   `json:"aspect_ratio"`
	SlideCount  int       `json:"slide_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPresentation returns a new Presentation with the given fields. ID is set
// by the service on create.
func NewPresentation(userID, title string, description, theme, aspectRatio *string, createdAt, updatedAt time.Time) *Presentation {
	return &Presentation{
		UserID:      userID,
		Title:       title,
		Description: description,
		Theme:       theme,
		AspectRatio: aspectRatio,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// PresentationRepository defines the interface for presentation storage.
// GetByIDAndOwner and Update filter by both id and owner so that a missing
// row and a row owned by someone else are indistinguishable to callers.
type PresentationRepository interface {
	Create(ctx context.Context, p *Presentation) error
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*Presentation, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*Presentation, error)
	Update(ctx context.Context, id, ownerID string, title, description, theme, aspectRatio *string, slideCount *int) (*Presentation, error)
}

// DeckService defines the business logic for presentations and their slides.
type DeckService interface {
	CreatePresentation(ctx context.Context, ownerID, title string, description, theme, aspectRatio *string) (*Presentation, error)
	UpdatePresentation(ctx context.Context, presentationID, ownerID string, title, description, theme, aspectRatio *string, slideCount *int) (*Presentation, error)
	ListPresentations(ctx context.Context, ownerID string) ([]*Presentation, error)
	CreateSlide(ctx context.Context, presentationID, ownerID string, orderIndex *int, layoutType, title, content, notes *string, rawData []byte) (*Slide, error)
	UpdateSlide(ctx context.Context, slideID, presentationID, ownerID string, orderIndex *int, layoutType, title, content, notes *string, rawData []byte) (*Slide, error)
	DeleteSlide(ctx context.Context, slideID, presentationID, ownerID string) error
	ListSlides(ctx context.Context, presentationID, ownerID string) ([]*Slide, error)
	SharePresentation(ctx context.Context, presentationID, ownerID string, emails []string) (sent int, failed []string, err error)
}

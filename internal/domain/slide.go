package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Slide represents one ordered page within a presentation. OrderIndex is
// 1-based and is neither unique nor contiguous; callers that render slides
// in order must sort on it themselves.
// swagger:model Slide
type Slide struct {
	ID             string          `json:"id"`
	PresentationID string          `json:"presentation_id"`
	OrderIndex     int             `json:"order_index"`
	LayoutType     *string         `json:"layout_type"`
	Title          *string         `json:"title"`
	Content        *string         `json:"content"`
	Notes          *string         `json:"notes"`
	RawData        json.RawMessage `json:"raw_data"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewSlide returns a new Slide with the given fields. ID is set by the
// service on create. An OrderIndex of 0 or less means the repository assigns
// the next index for the presentation on insert.
func NewSlide(presentationID string, orderIndex int, layoutType, title, content, notes *string, rawData json.RawMessage, createdAt, updatedAt time.Time) *Slide {
	return &Slide{
		PresentationID: presentationID,
		OrderIndex:     orderIndex,
		LayoutType:     layoutType,
		Title:          title,
		Content:        content,
		Notes:          notes,
		RawData:        rawData,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

// SlideRepository defines the interface for slide storage.
//
// Create and Delete each run as a single transaction that also refreshes the
// parent presentation's slide_count from the actual slide rows, so the
// cached count cannot drift under concurrent mutations. Get, Update, and
// Delete filter by both slide id and presentation id; a slide that exists
// under a different presentation surfaces as ErrNotFound.
type SlideRepository interface {
	Create(ctx context.Context, slide *Slide) error
	GetByIDAndPresentation(ctx context.Context, id, presentationID string) (*Slide, error)
	ListByPresentationID(ctx context.Context, presentationID string) ([]*Slide, error)
	Update(ctx context.Context, id, presentationID string, orderIndex *int, layoutType, title, content, notes *string, rawData []byte) (*Slide, error)
	Delete(ctx context.Context, id, presentationID string) error
}

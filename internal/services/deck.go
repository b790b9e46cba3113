package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"slidedeck/internal/domain"
)

type deckService struct {
	presentationRepo domain.PresentationRepository
	slideRepo        domain.SlideRepository
	emailService     domain.EmailService
	contextTimeout   time.Duration
}

func NewDeckService(presentationRepo domain.PresentationRepository,
	slideRepo domain.SlideRepository,
	emailService domain.EmailService,
	timeout time.Duration,
) domain.DeckService {
	return &deckService{
		presentationRepo: presentationRepo,
		slideRepo:        slideRepo,
		emailService:     emailService,
		contextTimeout:   timeout,
	}
}

// ownedPresentation fetches the presentation filtered by both id and owner.
// A presentation that does not exist and one owned by someone else both
// return ErrNotFound.
func (s *deckService) ownedPresentation(ctx context.Context, presentationID, ownerID string) (*domain.Presentation, error) {
	p, err := s.presentationRepo.GetByIDAndOwner(ctx, presentationID, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get presentation: %w", err)
	}
	return p, nil
}

func (s *deckService) CreatePresentation(ctx context.Context, ownerID, title string, description, theme, aspectRatio *string) (*domain.Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if ownerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	p := domain.NewPresentation(ownerID, title, description, theme, aspectRatio, now, now)
	p.ID = uuid.NewString()
	if err := s.presentationRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}
	return p, nil
}

func (s *deckService) UpdatePresentation(ctx context.Context, presentationID, ownerID string, title, description, theme, aspectRatio *string, slideCount *int) (*domain.Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedPresentation(ctx, presentationID, ownerID); err != nil {
		return nil, err
	}
	updated, err := s.presentationRepo.Update(ctx, presentationID, ownerID, title, description, theme, aspectRatio, slideCount)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update presentation: %w", err)
	}
	return updated, nil
}

func (s *deckService) ListPresentations(ctx context.Context, ownerID string) ([]*domain.Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	presentations, err := s.presentationRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}
	if presentations == nil {
		presentations = []*domain.Presentation{}
	}
	return presentations, nil
}

func (s *deckService) CreateSlide(ctx context.Context, presentationID, ownerID string, orderIndex *int, layoutType, title, content, notes *string, rawData []byte) (*domain.Slide, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedPresentation(ctx, presentationID, ownerID); err != nil {
		return nil, err
	}

	order := 0
	if orderIndex != nil {
		order = *orderIndex
	}
	now := time.Now()
	slide := domain.NewSlide(presentationID, order, layoutType, title, content, notes, rawData, now, now)
	slide.ID = uuid.NewString()
	if err := s.slideRepo.Create(ctx, slide); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create slide: %w", err)
	}
	return slide, nil
}

func (s *deckService) UpdateSlide(ctx context.Context, slideID, presentationID, ownerID string, orderIndex *int, layoutType, title, content, notes *string, rawData []byte) (*domain.Slide, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedPresentation(ctx, presentationID, ownerID); err != nil {
		return nil, err
	}
	updated, err := s.slideRepo.Update(ctx, slideID, presentationID, orderIndex, layoutType, title, content, notes, rawData)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update slide: %w", err)
	}
	return updated, nil
}

func (s *deckService) DeleteSlide(ctx context.Context, slideID, presentationID, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedPresentation(ctx, presentationID, ownerID); err != nil {
		return err
	}
	if err := s.slideRepo.Delete(ctx, slideID, presentationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete slide: %w", err)
	}
	return nil
}

func (s *deckService) ListSlides(ctx context.Context, presentationID, ownerID string) ([]*domain.Slide, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedPresentation(ctx, presentationID, ownerID); err != nil {
		return nil, err
	}
	slides, err := s.slideRepo.ListByPresentationID(ctx, presentationID)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	if slides == nil {
		slides = []*domain.Slide{}
	}
	return slides, nil
}

func (s *deckService) SharePresentation(ctx context.Context, presentationID, ownerID string, emails []string) (sent int, failed []string, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.ownedPresentation(ctx, presentationID, ownerID)
	if err != nil {
		return 0, nil, err
	}

	for _, email := range emails {
		email = strings.TrimSpace(strings.ToLower(email))
		if email == "" {
			continue
		}
		data := &domain.ShareEmailData{
			Email:          email,
			Title:          p.Title,
			PresentationID: p.ID,
		}
		if err := s.emailService.SendPresentationShared(ctx, data); err != nil {
			failed = append(failed, email)
			continue
		}
		sent++
	}
	return sent, failed, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"slidedeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePresentationRepo is an in-memory PresentationRepository for tests.
type fakePresentationRepo struct {
	byID      map[string]*domain.Presentation
	createErr error
	updateErr error
}

func newFakePresentationRepo() *fakePresentationRepo {
	return &fakePresentationRepo{byID: make(map[string]*domain.Presentation)}
}

func (f *fakePresentationRepo) Create(ctx context.Context, p *domain.Presentation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakePresentationRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Presentation, error) {
	p, ok := f.byID[id]
	if !ok || p.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakePresentationRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Presentation, error) {
	var out []*domain.Presentation
	for _, p := range f.byID {
		if p.UserID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePresentationRepo) Update(ctx context.Context, id, ownerID string, title, description, theme, aspectRatio *string, slideCount *int) (*domain.Presentation, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	p, ok := f.byID[id]
	if !ok || p.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	if title != nil {
		p.Title = *title
	}
	if description != nil {
		p.Description = description
	}
	if theme != nil {
		p.Theme = theme
	}
	if aspectRatio != nil {
		p.AspectRatio = aspectRatio
	}
	if slideCount != nil {
		p.SlideCount = *slideCount
	}
	p.UpdatedAt = time.Now()
	return p, nil
}

// fakeSlideRepo is an in-memory SlideRepository for tests. It mirrors the
// repository contract: Create assigns order max+1 when OrderIndex <= 0 and
// both Create and Delete refresh the parent's SlideCount.
type fakeSlideRepo struct {
	slides    map[string]*domain.Slide
	parents   *fakePresentationRepo
	createErr error
	deleteErr error
}

func newFakeSlideRepo(parents *fakePresentationRepo) *fakeSlideRepo {
	return &fakeSlideRepo{slides: make(map[string]*domain.Slide), parents: parents}
}

func (f *fakeSlideRepo) refreshCount(presentationID string) {
	p, ok := f.parents.byID[presentationID]
	if !ok {
		return
	}
	count := 0
	for _, s := range f.slides {
		if s.PresentationID == presentationID {
			count++
		}
	}
	p.SlideCount = count
	p.UpdatedAt = time.Now()
}

func (f *fakeSlideRepo) Create(ctx context.Context, slide *domain.Slide) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.parents.byID[slide.PresentationID]; !ok {
		return domain.ErrNotFound
	}
	if slide.OrderIndex <= 0 {
		max := 0
		for _, s := range f.slides {
			if s.PresentationID == slide.PresentationID && s.OrderIndex > max {
				max = s.OrderIndex
			}
		}
		slide.OrderIndex = max + 1
	}
	f.slides[slide.ID] = slide
	f.refreshCount(slide.PresentationID)
	return nil
}

func (f *fakeSlideRepo) GetByIDAndPresentation(ctx context.Context, id, presentationID string) (*domain.Slide, error) {
	s, ok := f.slides[id]
	if !ok || s.PresentationID != presentationID {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSlideRepo) ListByPresentationID(ctx context.Context, presentationID string) ([]*domain.Slide, error) {
	var out []*domain.Slide
	for _, s := range f.slides {
		if s.PresentationID == presentationID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlideRepo) Update(ctx context.Context, id, presentationID string, orderIndex *int, layoutType, title, content, notes *string, rawData []byte) (*domain.Slide, error) {
	s, ok := f.slides[id]
	if !ok || s.PresentationID != presentationID {
		return nil, domain.ErrNotFound
	}
	if orderIndex != nil {
		s.OrderIndex = *orderIndex
	}
	if layoutType != nil {
		s.LayoutType = layoutType
	}
	if title != nil {
		s.Title = title
	}
	if content != nil {
		s.Content = content
	}
	if notes != nil {
		s.Notes = notes
	}
	if rawData != nil {
		s.RawData = rawData
	}
	s.UpdatedAt = time.Now()
	return s, nil
}

func (f *fakeSlideRepo) Delete(ctx context.Context, id, presentationID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	s, ok := f.slides[id]
	if !ok || s.PresentationID != presentationID {
		return domain.ErrNotFound
	}
	delete(f.slides, id)
	f.refreshCount(presentationID)
	return nil
}

// fakeEmailService records sent share notifications.
type fakeEmailService struct {
	sent    []string
	failFor map[string]bool
}

func (f *fakeEmailService) SendPresentationShared(ctx context.Context, data *domain.ShareEmailData) error {
	if f.failFor[data.Email] {
		return fmt.Errorf("smtp says no")
	}
	f.sent = append(f.sent, data.Email)
	return nil
}

func newTestDeckService() (domain.DeckService, *fakePresentationRepo, *fakeSlideRepo, *fakeEmailService) {
	presentations := newFakePresentationRepo()
	slides := newFakeSlideRepo(presentations)
	emails := &fakeEmailService{failFor: make(map[string]bool)}
	svc := NewDeckService(presentations, slides, emails, 2*time.Second)
	return svc, presentations, slides, emails
}

func TestCreatePresentation(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-1", "Q1 Review", nil, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, 0, p.SlideCount)
	assert.False(t, p.CreatedAt.IsZero())
	assert.False(t, p.UpdatedAt.IsZero())
	assert.Contains(t, repo.byID, p.ID)
}

func TestCreatePresentation_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDeckService()

	_, err := svc.CreatePresentation(ctx, "user-1", "   ", nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreatePresentation(ctx, "", "Q1 Review", nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSlide_OrderAssignmentAndCount(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-1", "Q1 Review", nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, p.SlideCount)

	s1, err := svc.CreateSlide(ctx, p.ID, "user-1", nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s1.OrderIndex)

	s2, err := svc.CreateSlide(ctx, p.ID, "user-1", nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, s2.OrderIndex)

	assert.Equal(t, 2, repo.byID[p.ID].SlideCount)
}

func TestCreateSlide_ExplicitOrderIndexKept(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-1", "Q1 Review", nil, nil, nil)
	require.NoError(t, err)

	order := 5
	s, err := svc.CreateSlide(ctx, p.ID, "user-1", &order, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, s.OrderIndex)

	// Duplicates are accepted; uniqueness of order_index is not enforced.
	again := 5
	s2, err := svc.CreateSlide(ctx, p.ID, "user-1", &again, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, s2.OrderIndex)
}

func TestCreateSlide_ForeignPresentationNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-a", "A's deck", nil, nil, nil)
	require.NoError(t, err)

	_, err = svc.CreateSlide(ctx, p.ID, "user-b", nil, nil, nil, nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.CreateSlide(ctx, "no-such-id", "user-a", nil, nil, nil, nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePresentation(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-1", "Q1 Review", nil, nil, nil)
	require.NoError(t, err)

	title := "Q2 Review"
	theme := "dark"
	updated, err := svc.UpdatePresentation(ctx, p.ID, "user-1", &title, nil, &theme, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Q2 Review", updated.Title)
	require.NotNil(t, updated.Theme)
	assert.Equal(t, "dark", *updated.Theme)
}

func TestUpdatePresentation_NotOwnedIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-a", "A's deck", nil, nil, nil)
	require.NoError(t, err)

	title := "hijack"
	_, err = svc.UpdatePresentation(ctx, p.ID, "user-b", &title, nil, nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPresentations(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDeckService()

	_, err := svc.CreatePresentation(ctx, "user-1", "One", nil, nil, nil)
	require.NoError(t, err)
	_, err = svc.CreatePresentation(ctx, "user-1", "Two", nil, nil, nil)
	require.NoError(t, err)
	_, err = svc.CreatePresentation(ctx, "user-2", "Other", nil, nil, nil)
	require.NoError(t, err)

	got, err := svc.ListPresentations(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	empty, err := svc.ListPresentations(ctx, "user-none")
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestUpdateSlide(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-1", "Q1 Review", nil, nil, nil)
	require.NoError(t, err)
	s, err := svc.CreateSlide(ctx, p.ID, "user-1", nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	title := "Intro"
	updated, err := svc.UpdateSlide(ctx, s.ID, p.ID, "user-1", nil, nil, &title, nil, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "Intro", *updated.Title)
}

func TestUpdateSlide_WrongPresentationIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDeckService()

	p1, err := svc.CreatePresentation(ctx, "user-1", "Deck 1", nil, nil, nil)
	require.NoError(t, err)
	p2, err := svc.CreatePresentation(ctx, "user-1", "Deck 2", nil, nil, nil)
	require.NoError(t, err)
	s, err := svc.CreateSlide(ctx, p1.ID, "user-1", nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	title := "x"
	_, err = svc.UpdateSlide(ctx, s.ID, p2.ID, "user-1", nil, nil, &title, nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSlide(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-1", "Q1 Review", nil, nil, nil)
	require.NoError(t, err)
	s, err := svc.CreateSlide(ctx, p.ID, "user-1", nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, repo.byID[p.ID].SlideCount)

	require.NoError(t, svc.DeleteSlide(ctx, s.ID, p.ID, "user-1"))
	assert.Equal(t, 0, repo.byID[p.ID].SlideCount)

	err = svc.DeleteSlide(ctx, s.ID, p.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSlide_WrongPresentationIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDeckService()

	p1, err := svc.CreatePresentation(ctx, "user-1", "Deck 1", nil, nil, nil)
	require.NoError(t, err)
	p2, err := svc.CreatePresentation(ctx, "user-1", "Deck 2", nil, nil, nil)
	require.NoError(t, err)
	s, err := svc.CreateSlide(ctx, p1.ID, "user-1", nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	err = svc.DeleteSlide(ctx, s.ID, p2.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListSlides_OwnershipGuard(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-a", "A's deck", nil, nil, nil)
	require.NoError(t, err)
	_, err = svc.CreateSlide(ctx, p.ID, "user-a", nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	// Another user gets not-found, never an empty list.
	_, err = svc.ListSlides(ctx, p.ID, "user-b")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	slides, err := svc.ListSlides(ctx, p.ID, "user-a")
	require.NoError(t, err)
	assert.Len(t, slides, 1)
}

func TestListSlides_EmptyIsEmptySlice(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-1", "Empty deck", nil, nil, nil)
	require.NoError(t, err)

	slides, err := svc.ListSlides(ctx, p.ID, "user-1")
	require.NoError(t, err)
	require.NotNil(t, slides)
	assert.Empty(t, slides)
}

func TestSharePresentation(t *testing.T) {
	ctx := context.Background()
	svc, _, _, emails := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-1", "Q1 Review", nil, nil, nil)
	require.NoError(t, err)

	emails.failFor["broken@example.com"] = true
	sent, failed, err := svc.SharePresentation(ctx, p.ID, "user-1", []string{
		"Alice@Example.com", "broken@example.com", "  bob@example.com ", "",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"broken@example.com"}, failed)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, emails.sent)
}

func TestSharePresentation_NotOwnedIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, emails := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-a", "A's deck", nil, nil, nil)
	require.NoError(t, err)

	_, _, err = svc.SharePresentation(ctx, p.ID, "user-b", []string{"c@example.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, emails.sent)
}

func TestCreateSlide_RepoErrorWrapped(t *testing.T) {
	ctx := context.Background()
	svc, _, slides, _ := newTestDeckService()

	p, err := svc.CreatePresentation(ctx, "user-1", "Q1 Review", nil, nil, nil)
	require.NoError(t, err)

	slides.createErr = errors.New("connection reset")
	_, err = svc.CreateSlide(ctx, p.ID, "user-1", nil, nil, nil, nil, nil, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"slidedeck/internal/domain"
)

const slideColumns = "id, presentation_id, order_index, layout_type, title, content, notes, raw_data, created_at, updated_at"

type slideRepository struct {
	DB *sql.DB
}

// NewSlideRepository returns a domain.SlideRepository implemented with Postgres.
func NewSlideRepository(db *sql.DB) domain.SlideRepository {
	return &slideRepository{DB: db}
}

func scanSlide(row interface{ Scan(dest ...any) error }) (*domain.Slide, error) {
	s := &domain.Slide{}
	var layoutNull, titleNull, contentNull, notesNull sql.NullString
	var rawNull []byte
	err := row.Scan(
		&s.ID, &s.PresentationID, &s.OrderIndex,
		&layoutNull, &titleNull, &contentNull, &notesNull, &rawNull,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if layoutNull.Valid {
		s.LayoutType = &layoutNull.String
	}
	if titleNull.Valid {
		s.Title = &titleNull.String
	}
	if contentNull.Valid {
		s.Content = &contentNull.String
	}
	if notesNull.Valid {
		s.Notes = &notesNull.String
	}
	if rawNull != nil {
		s.RawData = rawNull
	}
	return s, nil
}

// Create inserts the slide and refreshes the parent's slide_count in one
// transaction. The parent row is locked first so that two concurrent creates
// cannot compute the same defaulted order index or a stale count. An
// OrderIndex of 0 or less is replaced with max(order_index)+1 for the
// presentation (1 when it has no slides).
func (r *slideRepository) Create(ctx context.Context, slide *domain.Slide) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked int
	err = tx.QueryRowContext(ctx,
		`SELECT slide_count FROM presentations WHERE id = $1 FOR UPDATE`,
		slide.PresentationID,
	).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("lock presentation: %w", err)
	}

	if slide.OrderIndex <= 0 {
		err = tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(order_index), 0) + 1 FROM slides WHERE presentation_id = $1`,
			slide.PresentationID,
		).Scan(&slide.OrderIndex)
		if err != nil {
			return fmt.Errorf("next order index: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO slides (id, presentation_id, order_index, layout_type, title, content, notes, raw_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		slide.ID, slide.PresentationID, slide.OrderIndex,
		slide.LayoutType, slide.Title, slide.Content, slide.Notes, []byte(slide.RawData),
		slide.CreatedAt, slide.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert slide: %w", err)
	}

	if err := refreshSlideCount(ctx, tx, slide.PresentationID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *slideRepository) GetByIDAndPresentation(ctx context.Context, id, presentationID string) (*domain.Slide, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM slides
		WHERE id = $1 AND presentation_id = $2
	`, slideColumns)
	s, err := scanSlide(r.DB.QueryRowContext(ctx, query, id, presentationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *slideRepository) ListByPresentationID(ctx context.Context, presentationID string) ([]*domain.Slide, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM slides
		WHERE presentation_id = $1
	`, slideColumns)
	rows, err := r.DB.QueryContext(ctx, query, presentationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	slides := make([]*domain.Slide, 0)
	for rows.Next() {
		s, err := scanSlide(rows)
		if err != nil {
			return nil, err
		}
		slides = append(slides, s)
	}
	return slides, rows.Err()
}

func (r *slideRepository) Update(ctx context.Context, id, presentationID string, orderIndex *int, layoutType, title, content, notes *string, rawData []byte) (*domain.Slide, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if orderIndex != nil {
		setClauses = append(setClauses, fmt.Sprintf("order_index = $%d", n))
		args = append(args, *orderIndex)
		n++
	}
	if layoutType != nil {
		setClauses = append(setClauses, fmt.Sprintf("layout_type = $%d", n))
		args = append(args, *layoutType)
		n++
	}
	if title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, *title)
		n++
	}
	if content != nil {
		setClauses = append(setClauses, fmt.Sprintf("content = $%d", n))
		args = append(args, *content)
		n++
	}
	if notes != nil {
		setClauses = append(setClauses, fmt.Sprintf("notes = $%d", n))
		args = append(args, *notes)
		n++
	}
	if rawData != nil {
		setClauses = append(setClauses, fmt.Sprintf("raw_data = $%d", n))
		args = append(args, rawData)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByIDAndPresentation(ctx, id, presentationID)
	}
	args = append(args, id, presentationID)
	query := fmt.Sprintf(`
		UPDATE slides SET %s
		WHERE id = $%d AND presentation_id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, n+1, slideColumns)
	s, err := scanSlide(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Delete removes the slide and refreshes the parent's slide_count in one
// transaction. Returns ErrNotFound when no slide matches both ids.
func (r *slideRepository) Delete(ctx context.Context, id, presentationID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked int
	err = tx.QueryRowContext(ctx,
		`SELECT slide_count FROM presentations WHERE id = $1 FOR UPDATE`,
		presentationID,
	).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("lock presentation: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM slides WHERE id = $1 AND presentation_id = $2`,
		id, presentationID,
	)
	if err != nil {
		return fmt.Errorf("delete slide: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := refreshSlideCount(ctx, tx, presentationID); err != nil {
		return err
	}
	return tx.Commit()
}

func refreshSlideCount(ctx context.Context, tx *sql.Tx, presentationID string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE presentations
		SET slide_count = (SELECT COUNT(*) FROM slides WHERE presentation_id = $1), updated_at = NOW()
		WHERE id = $1
	`, presentationID)
	if err != nil {
		return fmt.Errorf("refresh slide count: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"slidedeck/internal/domain"
)

const presentationColumns = "id, user_id, title, description, theme, aspect_ratio, slide_count, created_at, updated_at"

type presentationRepository struct {
	DB *sql.DB
}

// NewPresentationRepository returns a domain.PresentationRepository implemented with Postgres.
func NewPresentationRepository(db *sql.DB) domain.PresentationRepository {
	return &presentationRepository{DB: db}
}

func scanPresentation(row interface{ Scan(dest ...any) error }) (*domain.Presentation, error) {
	p := &domain.Presentation{}
	var descNull, themeNull, ratioNull sql.NullString
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &descNull, &themeNull, &ratioNull,
		&p.SlideCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		p.Description = &descNull.String
	}
	if themeNull.Valid {
		p.Theme = &themeNull.String
	}
	if ratioNull.Valid {
		p.AspectRatio = &ratioNull.String
	}
	return p, nil
}

func (r *presentationRepository) Create(ctx context.Context, p *domain.Presentation) error {
	query := `
		INSERT INTO presentations (id, user_id, title, description, theme, aspect_ratio, slide_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.UserID, p.Title, p.Description, p.Theme, p.AspectRatio,
		p.SlideCount, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *presentationRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Presentation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM presentations
		WHERE id = $1 AND user_id = $2
	`, presentationColumns)
	p, err := scanPresentation(r.DB.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *presentationRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Presentation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM presentations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, presentationColumns)
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	presentations := make([]*domain.Presentation, 0)
	for rows.Next() {
		p, err := scanPresentation(rows)
		if err != nil {
			return nil, err
		}
		presentations = append(presentations, p)
	}
	return presentations, rows.Err()
}

func (r *presentationRepository) Update(ctx context.Context, id, ownerID string, title, description, theme, aspectRatio *string, slideCount *int) (*domain.Presentation, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, *title)
		n++
	}
	if description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *description)
		n++
	}
	if theme != nil {
		setClauses = append(setClauses, fmt.Sprintf("theme = $%d", n))
		args = append(args, *theme)
		n++
	}
	if aspectRatio != nil {
		setClauses = append(setClauses, fmt.Sprintf("aspect_ratio = $%d", n))
		args = append(args, *aspectRatio)
		n++
	}
	if slideCount != nil {
		setClauses = append(setClauses, fmt.Sprintf("slide_count = $%d", n))
		args = append(args, *slideCount)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByIDAndOwner(ctx, id, ownerID)
	}
	args = append(args, id, ownerID)
	query := fmt.Sprintf(`
		UPDATE presentations SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, n+1, presentationColumns)
	p, err := scanPresentation(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

package repository

import (
	"context"
	"time"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

func (r *Repository) GetAllForms() ([]*domain.Form, error) {
	query := `
		SELECT id, title, description, submission_deadline, status, created_at, version
		FROM forms
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	forms := make([]*domain.Form, 0)
	for rows.Next() {
		form := &domain.Form{}
		dst := []any{&form.ID, &form.Title, &form.Description, &form.SubmissionDeadline, &form.Status, &form.CreatedAt, &form.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return forms, nil
}

func (r *Repository) GetFormByID(id int64) (*domain.Form, error) {
	query := `
		SELECT title, description, submission_deadline, status, created_at, version
		FROM forms WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	form := &domain.Form{
		ID: id,
	}

	dst := []any{&form.Title, &form.Description, &form.SubmissionDeadline, &form.Status, &form.CreatedAt, &form.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return form, nil
}

func (r *Repository) CreateForm(form *domain.Form) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO forms (title, description, submission_deadline, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	args := []any{form.Title, form.Description, form.SubmissionDeadline, form.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&form.ID, &form.CreatedAt, &form.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateForm(form *domain.Form) error {
	query := `
		UPDATE forms
		SET
			title = $1,
			description = $2,
			submission_deadline = $3,
			status = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{form.Title, form.Description, form.SubmissionDeadline, form.Status, form.ID, form.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&form.CreatedAt, &form.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteForm(id int64) error {
	query := `
		DELETE FROM forms WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// GetFormsDueBetween returns published forms whose deadline falls inside the
// half-open interval [from, to). The reminder sweep uses it to pick up forms
// closing within the configured lead time.
func (r *Repository) GetFormsDueBetween(from, to time.Time) ([]*domain.Form, error) {
	query := `
		SELECT id, title, description, submission_deadline, status, created_at, version
		FROM forms
		WHERE status = 'PUBLISHED'
		  AND submission_deadline >= $1
		  AND submission_deadline < $2
		ORDER BY submission_deadline
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	forms := make([]*domain.Form, 0)
	for rows.Next() {
		form := &domain.Form{}
		dst := []any{&form.ID, &form.Title, &form.Description, &form.SubmissionDeadline, &form.Status, &form.CreatedAt, &form.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return forms, nil
}

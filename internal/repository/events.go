package repository

import (
	"context"
	"time"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

func (r *Repository) GetAllEvents() ([]*domain.Event, error) {
	query := `
		SELECT id, title, description, start_time, end_time, venue, status, program_id, created_at, version
		FROM events
		ORDER BY start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event := &domain.Event{}
		dst := []any{&event.ID, &event.Title, &event.Description, &event.StartTime, &event.EndTime, &event.Venue, &event.Status, &event.ProgramID, &event.CreatedAt, &event.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *Repository) GetEventByID(id int64) (*domain.Event, error) {
	query := `
		SELECT title, description, start_time, end_time, venue, status, program_id, created_at, version
		FROM events WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	event := &domain.Event{
		ID: id,
	}

	dst := []any{&event.Title, &event.Description, &event.StartTime, &event.EndTime, &event.Venue, &event.Status, &event.ProgramID, &event.CreatedAt, &event.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return event, nil
}

func (r *Repository) CreateEvent(event *domain.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO events (title, description, start_time, end_time, venue, status, program_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, version
	`

	args := []any{event.Title, event.Description, event.StartTime, event.EndTime, event.Venue, event.Status, event.ProgramID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&event.ID, &event.CreatedAt, &event.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateEvent(event *domain.Event) error {
	query := `
		UPDATE events
		SET
			title = $1,
			description = $2,
			start_time = $3,
			end_time = $4,
			venue = $5,
			status = $6,
			program_id = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{event.Title, event.Description, event.StartTime, event.EndTime, event.Venue, event.Status, event.ProgramID, event.ID, event.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&event.CreatedAt, &event.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEvent(id int64) error {
	query := `
		DELETE FROM events WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

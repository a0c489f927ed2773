package repository

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

// Programs keep their schedule definition across three tables: the parent
// row holds the scalar fields, program_schedule_days holds the weekday
// selection and program_schedule_exceptions the suppressed dates.

const programScheduleDateLayout = "2006-01-02"

func (r *Repository) GetAllPrograms() ([]*domain.Program, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			p.id,
			p.title,
			p.description,
			p.status,
			p.target_audience,
			p.start_date,
			p.end_date,
			p.schedule_type,
			p.start_time,
			p.end_time,
			p.frequency,
			p.frequency_interval,
			p.custom_description,
			p.created_at,
			p.version,
			psd.day,
			pse.exception_date
		FROM programs p
		LEFT JOIN program_schedule_days psd ON p.id = psd.program_id
		LEFT JOIN program_schedule_exceptions pse ON p.id = pse.program_id
		ORDER BY p.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programsMap := make(map[int64]*domain.Program)
	daysMap := make(map[int64]map[string]struct{})
	exceptionsMap := make(map[int64]map[string]struct{})
	order := []int64{}

	for rows.Next() {
		var row struct {
			ID                int64
			Title             string
			Description       string
			Status            string
			TargetAudience    string
			StartDate         time.Time
			EndDate           time.Time
			ScheduleType      string
			StartTime         string
			EndTime           string
			Frequency         sql.NullString
			FrequencyInterval sql.NullInt32
			CustomDescription sql.NullString
			CreatedAt         time.Time
			Version           int32

			Day           sql.NullString
			ExceptionDate sql.NullTime
		}

		dst := []any{
			&row.ID,
			&row.Title,
			&row.Description,
			&row.Status,
			&row.TargetAudience,
			&row.StartDate,
			&row.EndDate,
			&row.ScheduleType,
			&row.StartTime,
			&row.EndTime,
			&row.Frequency,
			&row.FrequencyInterval,
			&row.CustomDescription,
			&row.CreatedAt,
			&row.Version,
			&row.Day,
			&row.ExceptionDate,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if _, exists := programsMap[row.ID]; !exists {
			program := &domain.Program{
				ID:             row.ID,
				Title:          row.Title,
				Description:    row.Description,
				Status:         domain.ProgramStatus(row.Status),
				TargetAudience: row.TargetAudience,
				StartDate:      row.StartDate,
				EndDate:        row.EndDate,
				Schedule: domain.ProgramSchedule{
					Type:              row.ScheduleType,
					StartDate:         row.StartDate.Format(programScheduleDateLayout),
					EndDate:           row.EndDate.Format(programScheduleDateLayout),
					StartTime:         row.StartTime,
					EndTime:           row.EndTime,
					Frequency:         row.Frequency.String,
					FrequencyInterval: row.FrequencyInterval.Int32,
					CustomDescription: row.CustomDescription.String,
				},
				CreatedAt: row.CreatedAt,
				Version:   row.Version,
			}
			programsMap[row.ID] = program
			daysMap[row.ID] = make(map[string]struct{})
			exceptionsMap[row.ID] = make(map[string]struct{})
			order = append(order, row.ID)
		}

		// The cartesian join repeats child rows; collect them as sets.
		if row.Day.Valid {
			daysMap[row.ID][row.Day.String] = struct{}{}
		}
		if row.ExceptionDate.Valid {
			exceptionsMap[row.ID][row.ExceptionDate.Time.Format(programScheduleDateLayout)] = struct{}{}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	programs := make([]*domain.Program, 0, len(order))
	for _, id := range order {
		program := programsMap[id]
		program.Schedule.DaysOfWeek = sortedKeys(daysMap[id])
		program.Schedule.Exceptions = sortedKeys(exceptionsMap[id])
		programs = append(programs, program)
	}

	return programs, nil
}

func (r *Repository) GetProgramByID(id int64) (*domain.Program, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			title, description, status, target_audience,
			start_date, end_date, schedule_type, start_time, end_time,
			frequency, frequency_interval, custom_description,
			created_at, version
		FROM programs WHERE id = $1
	`

	program := &domain.Program{ID: id}
	var frequency, customDescription sql.NullString
	var frequencyInterval sql.NullInt32

	dst := []any{
		&program.Title,
		&program.Description,
		&program.Status,
		&program.TargetAudience,
		&program.StartDate,
		&program.EndDate,
		&program.Schedule.Type,
		&program.Schedule.StartTime,
		&program.Schedule.EndTime,
		&frequency,
		&frequencyInterval,
		&customDescription,
		&program.CreatedAt,
		&program.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	program.Schedule.StartDate = program.StartDate.Format(programScheduleDateLayout)
	program.Schedule.EndDate = program.EndDate.Format(programScheduleDateLayout)
	program.Schedule.Frequency = frequency.String
	program.Schedule.FrequencyInterval = frequencyInterval.Int32
	program.Schedule.CustomDescription = customDescription.String

	dayRows, err := r.dbpool.QueryContext(ctx, `SELECT day FROM program_schedule_days WHERE program_id = $1 ORDER BY day`, id)
	if err != nil {
		return nil, err
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var day string
		if err := dayRows.Scan(&day); err != nil {
			return nil, err
		}
		program.Schedule.DaysOfWeek = append(program.Schedule.DaysOfWeek, day)
	}
	if err := dayRows.Err(); err != nil {
		return nil, err
	}

	exceptionRows, err := r.dbpool.QueryContext(ctx, `SELECT exception_date FROM program_schedule_exceptions WHERE program_id = $1 ORDER BY exception_date`, id)
	if err != nil {
		return nil, err
	}
	defer exceptionRows.Close()
	for exceptionRows.Next() {
		var exception time.Time
		if err := exceptionRows.Scan(&exception); err != nil {
			return nil, err
		}
		program.Schedule.Exceptions = append(program.Schedule.Exceptions, exception.Format(programScheduleDateLayout))
	}
	if err := exceptionRows.Err(); err != nil {
		return nil, err
	}

	return program, nil
}

func (r *Repository) CreateProgram(program *domain.Program) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO programs (
			title, description, status, target_audience,
			start_date, end_date, schedule_type, start_time, end_time,
			frequency, frequency_interval, custom_description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, version
	`

	args := []any{
		program.Title,
		program.Description,
		program.Status,
		program.TargetAudience,
		program.StartDate,
		program.EndDate,
		program.Schedule.Type,
		program.Schedule.StartTime,
		program.Schedule.EndTime,
		nullString(program.Schedule.Frequency),
		program.Schedule.FrequencyInterval,
		nullString(program.Schedule.CustomDescription),
	}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&program.ID, &program.CreatedAt, &program.Version); err != nil {
		return err
	}

	if err := insertScheduleChildren(ctx, tx, program); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) UpdateProgram(program *domain.Program) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE programs
		SET
			title = $1,
			description = $2,
			status = $3,
			target_audience = $4,
			start_date = $5,
			end_date = $6,
			schedule_type = $7,
			start_time = $8,
			end_time = $9,
			frequency = $10,
			frequency_interval = $11,
			custom_description = $12,
			version = version + 1
		WHERE id = $13 AND version = $14
		RETURNING version
	`

	args := []any{
		program.Title,
		program.Description,
		program.Status,
		program.TargetAudience,
		program.StartDate,
		program.EndDate,
		program.Schedule.Type,
		program.Schedule.StartTime,
		program.Schedule.EndTime,
		nullString(program.Schedule.Frequency),
		program.Schedule.FrequencyInterval,
		nullString(program.Schedule.CustomDescription),
		program.ID,
		program.Version,
	}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&program.Version); err != nil {
		return err
	}

	// Replace the weekday and exception selections wholesale; diffing them
	// buys nothing at this size.
	if _, err := tx.ExecContext(ctx, `DELETE FROM program_schedule_days WHERE program_id = $1`, program.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM program_schedule_exceptions WHERE program_id = $1`, program.ID); err != nil {
		return err
	}
	if err := insertScheduleChildren(ctx, tx, program); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) DeleteProgram(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, `DELETE FROM programs WHERE id = $1`, id); err != nil {
		return err
	}

	return nil
}

func insertScheduleChildren(ctx context.Context, tx *sql.Tx, program *domain.Program) error {
	for _, day := range program.Schedule.DaysOfWeek {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO program_schedule_days (program_id, day) VALUES ($1, $2)`,
			program.ID, day,
		); err != nil {
			return err
		}
	}

	for _, exception := range program.Schedule.Exceptions {
		exceptionDate, err := time.Parse(programScheduleDateLayout, exception)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO program_schedule_exceptions (program_id, exception_date) VALUES ($1, $2)`,
			program.ID, exceptionDate,
		); err != nil {
			return err
		}
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/russelescultura/sk-barangay-sub001/internal/calendar"
	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

func (h *Handler) GetAllPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.repository.GetAllPrograms()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "programs retrieved", programs)
}

func (h *Handler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title          string                 `json:"title" validate:"required"`
		Description    string                 `json:"description"`
		Status         string                 `json:"status" validate:"required,oneof=ACTIVE COMPLETED CANCELLED"`
		TargetAudience string                 `json:"targetAudience" validate:"required"`
		Schedule       domain.ProgramSchedule `json:"schedule"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// The schedule definition is validated once here; nothing malformed ever
	// reaches the database or the expander.
	parsed, err := calendar.ParseSchedule(req.Schedule)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	program := &domain.Program{
		Title:          req.Title,
		Description:    req.Description,
		Status:         domain.ProgramStatus(req.Status),
		TargetAudience: req.TargetAudience,
		StartDate:      parsed.StartDate.Midnight(h.location),
		EndDate:        parsed.EndDate.Midnight(h.location),
		Schedule:       req.Schedule,
	}

	if err := h.repository.CreateProgram(program); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "program created", program)
}

func (h *Handler) GetProgram(w http.ResponseWriter, r *http.Request) {
	program := r.Context().Value(ProgramCtx).(*domain.Program)
	h.successResponse(w, r, "program retrieved", program)
}

func (h *Handler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title          *string                 `json:"title"`
		Description    *string                 `json:"description"`
		Status         *string                 `json:"status" validate:"omitempty,oneof=ACTIVE COMPLETED CANCELLED"`
		TargetAudience *string                 `json:"targetAudience"`
		Schedule       *domain.ProgramSchedule `json:"schedule"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	program := r.Context().Value(ProgramCtx).(*domain.Program)

	if req.Title != nil {
		program.Title = *req.Title
	}
	if req.Description != nil {
		program.Description = *req.Description
	}
	if req.Status != nil {
		program.Status = domain.ProgramStatus(*req.Status)
	}
	if req.TargetAudience != nil {
		program.TargetAudience = *req.TargetAudience
	}
	if req.Schedule != nil {
		parsed, err := calendar.ParseSchedule(*req.Schedule)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		program.Schedule = *req.Schedule
		program.StartDate = parsed.StartDate.Midnight(h.location)
		program.EndDate = parsed.EndDate.Midnight(h.location)
	}

	if err := h.repository.UpdateProgram(program); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "program update failed, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "program updated", program)
}

func (h *Handler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	program := r.Context().Value(ProgramCtx).(*domain.Program)

	if err := h.repository.DeleteProgram(program.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "program deleted", nil)
}

// GetProgramOccurrences expands the program's schedule over a date range
// given as inclusive from/to query parameters, both defaulting to the
// program's own date range.
func (h *Handler) GetProgramOccurrences(w http.ResponseWriter, r *http.Request) {
	program := r.Context().Value(ProgramCtx).(*domain.Program)

	schedule, err := calendar.ParseSchedule(program.Schedule)
	if err != nil {
		// A stored schedule failing to parse means bad data, not bad input.
		h.internalServerError(w, r, err)
		return
	}

	from := schedule.StartDate
	to := schedule.EndDate

	if raw := r.URL.Query().Get("from"); raw != "" {
		if from, err = calendar.ParseDate(raw); err != nil {
			h.errorResponse(w, r, "invalid from date")
			return
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if to, err = calendar.ParseDate(raw); err != nil {
			h.errorResponse(w, r, "invalid to date")
			return
		}
	}

	// The query range is inclusive on both ends; the expander's window end
	// is exclusive.
	occurrences := calendar.Expand(schedule, from, to.AddDays(1), h.location)

	h.successResponse(w, r, "occurrences retrieved", occurrences)
}

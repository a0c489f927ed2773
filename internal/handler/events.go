package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

func (h *Handler) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.repository.GetAllEvents()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "events retrieved", events)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string     `json:"title" validate:"required"`
		Description string     `json:"description"`
		StartTime   time.Time  `json:"startTime" validate:"required"`
		EndTime     *time.Time `json:"endTime"`
		Venue       string     `json:"venue" validate:"required"`
		Status      string     `json:"status" validate:"required,oneof=PLANNED ONGOING COMPLETED CANCELLED"`
		ProgramID   *int64     `json:"programID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.EndTime != nil && !req.EndTime.After(req.StartTime) {
		h.errorResponse(w, r, "end time must be after start time")
		return
	}

	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Venue:       req.Venue,
		Status:      domain.EventStatus(req.Status),
		ProgramID:   req.ProgramID,
	}

	if err := h.repository.CreateEvent(event); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "events_program_id_fkey":
			h.badRequest(w, r, errors.New("program does not exist"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "event created", event)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event := r.Context().Value(EventCtx).(*domain.Event)
	h.successResponse(w, r, "event retrieved", event)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		StartTime   *time.Time `json:"startTime"`
		EndTime     *time.Time `json:"endTime"`
		Venue       *string    `json:"venue"`
		Status      *string    `json:"status" validate:"omitempty,oneof=PLANNED ONGOING COMPLETED CANCELLED"`
		ProgramID   *int64     `json:"programID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	event := r.Context().Value(EventCtx).(*domain.Event)

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = req.EndTime
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.Status != nil {
		event.Status = domain.EventStatus(*req.Status)
	}
	if req.ProgramID != nil {
		event.ProgramID = req.ProgramID
	}

	if event.EndTime != nil && !event.EndTime.After(event.StartTime) {
		h.errorResponse(w, r, "end time must be after start time")
		return
	}

	if err := h.repository.UpdateEvent(event); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "event update failed, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "event updated", event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	event := r.Context().Value(EventCtx).(*domain.Event)

	if err := h.repository.DeleteEvent(event.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "event deleted", nil)
}

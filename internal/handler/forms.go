package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
)

func (h *Handler) GetAllForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.repository.GetAllForms()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "forms retrieved", forms)
}

func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title              string     `json:"title" validate:"required"`
		Description        string     `json:"description"`
		SubmissionDeadline *time.Time `json:"submissionDeadline"`
		Status             string     `json:"status" validate:"required,oneof=DRAFT PUBLISHED CLOSED"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	form := &domain.Form{
		Title:              req.Title,
		Description:        req.Description,
		SubmissionDeadline: req.SubmissionDeadline,
		Status:             domain.FormStatus(req.Status),
	}

	if err := h.repository.CreateForm(form); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "form created", form)
}

func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	form := r.Context().Value(FormCtx).(*domain.Form)
	h.successResponse(w, r, "form retrieved", form)
}

func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title              *string    `json:"title"`
		Description        *string    `json:"description"`
		SubmissionDeadline *time.Time `json:"submissionDeadline"`
		Status             *string    `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED CLOSED"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	form := r.Context().Value(FormCtx).(*domain.Form)

	if req.Title != nil {
		form.Title = *req.Title
	}
	if req.Description != nil {
		form.Description = *req.Description
	}
	if req.SubmissionDeadline != nil {
		form.SubmissionDeadline = req.SubmissionDeadline
	}
	if req.Status != nil {
		form.Status = domain.FormStatus(*req.Status)
	}

	if err := h.repository.UpdateForm(form); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "form update failed, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "form updated", form)
}

func (h *Handler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	form := r.Context().Value(FormCtx).(*domain.Form)

	if err := h.repository.DeleteForm(form.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "form deleted", nil)
}

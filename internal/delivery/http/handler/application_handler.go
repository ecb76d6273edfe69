package handler

import (
	"errors"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/application"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc     usecase.ApplicationUsecase
	authMw *middleware.AuthMiddleware
}

type transitionRequest struct {
	Status            string  `json:"status"`
	RejectionFeedback *string `json:"rejection_feedback"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase, authMw *middleware.AuthMiddleware) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, authMw: authMw}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/me", h.ListMine, h.authMw.RequireApplicant())
	r.Get("/me/:jobID", h.GetMine, h.authMw.RequireApplicant())
	r.Post("/:jobID", h.Apply, h.authMw.RequireApplicant())
	r.Delete("/me/:jobID", h.Withdraw, h.authMw.RequireApplicant())
	r.Get("/job/:jobID", h.ListForJob, h.authMw.RequireRecruiter())
	r.Patch("/job/:jobID/:applicantID/status", h.Transition, h.authMw.RequireRecruiter())
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("jobID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Apply(c.Context(), userID, jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewApplicationResponse(created))
}

func (h *ApplicationHandler) Withdraw(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("jobID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	deleted, err := h.uc.Withdraw(c.Context(), userID, jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(deleted))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	status, err := statusFilterFromQuery(c)
	if err != nil {
		return err
	}

	apps, err := h.uc.ListForApplicant(c.Context(), userID, status)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(apps))
}

func (h *ApplicationHandler) GetMine(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("jobID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.Get(c.Context(), userID, jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(app))
}

func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("jobID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	status, err := statusFilterFromQuery(c)
	if err != nil {
		return err
	}

	apps, err := h.uc.ListForJob(c.Context(), userID, jobID, status)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(apps))
}

func (h *ApplicationHandler) Transition(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("jobID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	applicantID, err := uuid.Parse(c.Params("applicantID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req transitionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	target, err := application.ParseStatus(req.Status)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown status", nil, err)
	}

	updated, err := h.uc.Transition(c.Context(), userID, applicantID, jobID, usecase.TransitionInput{
		Target:            target,
		RejectionFeedback: req.RejectionFeedback,
	})
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(updated))
}

func statusFilterFromQuery(c fiber.Ctx) (*application.Status, error) {
	raw := c.Query("status")
	if raw == "" {
		return nil, nil
	}
	s, err := application.ParseStatus(raw)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Unknown status", nil, err)
	}
	return &s, nil
}

func mapApplicationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, application.ErrUnknownStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationExists):
		return middleware.NewAppError(fiber.StatusConflict, "Application already exists", nil, err)
	case errors.Is(err, usecase.ErrProfileRequired):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Profile required", nil, err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Invalid status transition", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Not the owner of this job", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

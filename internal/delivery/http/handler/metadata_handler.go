package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// MetadataHandler serves the selection catalogs: skills and application
// statuses.
type MetadataHandler struct {
	uc usecase.MetadataUsecase
}

func NewMetadataHandler(uc usecase.MetadataUsecase) *MetadataHandler {
	return &MetadataHandler{uc: uc}
}

func (h *MetadataHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.ListSkills)
	r.Get("/statuses", h.ListStatuses)
}

func (h *MetadataHandler) ListSkills(c fiber.Ctx) error {
	skills, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillListResponse(skills))
}

func (h *MetadataHandler) ListStatuses(c fiber.Ctx) error {
	statuses, err := h.uc.ListStatuses(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStatusListResponse(statuses))
}

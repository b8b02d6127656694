package handler

import (
	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/application"
	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationsHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ResumeURL   string `json:"resume_url"`
	CoverLetter string `json:"cover_letter"`
}

func NewApplicationsHandler(uc usecase.ApplicationUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

func (h *ApplicationsHandler) Apply(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// an unparsable id can't reference any job
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.Apply(c.Context(), jobID, usecase.ApplyInput{
		Name:        req.Name,
		Email:       req.Email,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Application submitted successfully", dto.NewApplicationResponse(a))
}

func (h *ApplicationsHandler) ListForAdmin(c fiber.Ctx) error {
	return h.list(c, func(actor user.User) ([]application.WithJob, error) {
		return h.uc.ListForAdmin(c.Context(), actor)
	})
}

func (h *ApplicationsHandler) ListForCandidate(c fiber.Ctx) error {
	return h.list(c, func(actor user.User) ([]application.WithJob, error) {
		return h.uc.ListForCandidate(c.Context(), actor)
	})
}

func (h *ApplicationsHandler) ListForRecruiter(c fiber.Ctx) error {
	return h.list(c, func(actor user.User) ([]application.WithJob, error) {
		return h.uc.ListForRecruiter(c.Context(), actor)
	})
}

func (h *ApplicationsHandler) list(c fiber.Ctx, fetch func(user.User) ([]application.WithJob, error)) error {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	items, err := fetch(actor)
	if err != nil {
		return mapServiceError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationWithJobListResponse(items))
}

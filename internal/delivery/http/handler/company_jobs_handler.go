package handler

import (
	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/pkg/response"
	"careerhub/internal/search"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// CompanyJobsHandler covers posting management for the authenticated company.
type CompanyJobsHandler struct {
	jobUC    usecase.JobUsecase
	searchUC usecase.JobSearchUsecase
}

type jobRequest struct {
	Title         string   `json:"title"`
	Department    string   `json:"department"`
	Type          string   `json:"type"`
	WorkplaceType string   `json:"workplace_type"`
	Location      string   `json:"location"`
	Skills        []string `json:"skills"`
	Description   string   `json:"description"`
}

type jobStatusRequest struct {
	Status   string `json:"status"`
	IsActive *bool  `json:"is_active"`
}

func NewCompanyJobsHandler(jobUC usecase.JobUsecase, searchUC usecase.JobSearchUsecase) *CompanyJobsHandler {
	return &CompanyJobsHandler{jobUC: jobUC, searchUC: searchUC}
}

func (h *CompanyJobsHandler) RegisterJobRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Patch("/:id/status", h.ChangeStatus)
	r.Delete("/:id", h.Deactivate)
}

func (h *CompanyJobsHandler) RegisterCompanyRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me/jobs", h.ListOwn)
}

func (h *CompanyJobsHandler) Create(c fiber.Ctx) error {
	companyID, ok := middleware.AccountIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.jobUC.Create(c.Context(), companyID, jobInputFromRequest(req))
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewJobResponse(p))
}

func (h *CompanyJobsHandler) Update(c fiber.Ctx) error {
	companyID, ok := middleware.AccountIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.jobUC.Update(c.Context(), companyID, jobID, jobInputFromRequest(req))
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(p))
}

func (h *CompanyJobsHandler) ChangeStatus(c fiber.Ctx) error {
	companyID, ok := middleware.AccountIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req jobStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	p, err := h.jobUC.ChangeStatus(c.Context(), companyID, jobID, req.Status, isActive)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(p))
}

func (h *CompanyJobsHandler) Deactivate(c fiber.Ctx) error {
	companyID, ok := middleware.AccountIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	if err := h.jobUC.Deactivate(c.Context(), companyID, jobID); err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CompanyJobsHandler) ListOwn(c fiber.Ctx) error {
	companyID, ok := middleware.AccountIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	criteria, err := search.ParseCriteria(c.Queries())
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid date parameter", nil, err)
	}

	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.searchUC.SearchCompany(c.Context(), companyID, criteria, limit, offset)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(items))
}

func jobInputFromRequest(req jobRequest) usecase.JobInput {
	return usecase.JobInput{
		Title:         req.Title,
		Department:    req.Department,
		Type:          req.Type,
		WorkplaceType: req.WorkplaceType,
		Location:      req.Location,
		Skills:        req.Skills,
		Description:   req.Description,
	}
}

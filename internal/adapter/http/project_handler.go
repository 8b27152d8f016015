package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	projectDomain "freelance-engagement-backend/internal/domain/project"
	"freelance-engagement-backend/internal/usecase/project"
	"freelance-engagement-backend/internal/usecase/proposal"
)

type ProjectHandler struct {
	uc        *project.Usecase
	proposals *proposal.Usecase
}

func NewProjectHandler(uc *project.Usecase, proposals *proposal.Usecase) *ProjectHandler {
	return &ProjectHandler{uc: uc, proposals: proposals}
}

type createProjectReq struct {
	ClientID    string          `json:"client_id"   validate:"required,hex32"`
	Name        string          `json:"name"        validate:"required"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"start_date"  validate:"required"`
	EndDate     *time.Time      `json:"end_date"`
	Value       decimal.Decimal `json:"value"       validate:"-"`
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req createProjectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), project.CreateInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// CreateFromProposal is the accept flow under its project-facing route: it
// runs the same atomic accept-and-derive operation.
func (h *ProjectHandler) CreateFromProposal(c echo.Context) error {
	result, err := h.proposals.Accept(c.Request().Context(), c.Param("proposal_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// GetProject returns the project merged with its derived progress.
func (h *ProjectHandler) GetProject(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	status := projectDomain.Status(c.QueryParam("status"))
	list, err := h.uc.List(c.Request().Context(), status)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type changeProjectStatusReq struct {
	Status string `json:"status" validate:"required,oneof=active paused finished cancelled"`
}

func (h *ProjectHandler) ChangeStatus(c echo.Context) error {
	var req changeProjectStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.ChangeStatus(c.Request().Context(), c.Param("project_id"), projectDomain.Status(req.Status))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type registerAdvanceReq struct {
	Note string `json:"note" validate:"required"`
}

func (h *ProjectHandler) RegisterAdvance(c echo.Context) error {
	var req registerAdvanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.RegisterAdvance(c.Request().Context(), c.Param("project_id"), req.Note)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type updateProjectDatesReq struct {
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date"`
}

func (h *ProjectHandler) UpdateDates(c echo.Context) error {
	var req updateProjectDatesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.UpdateDates(c.Request().Context(), c.Param("project_id"), project.UpdateDatesInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

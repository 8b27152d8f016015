package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	deliverableDomain "freelance-engagement-backend/internal/domain/deliverable"
	"freelance-engagement-backend/internal/usecase/deliverable"
)

type DeliverableHandler struct {
	uc *deliverable.Usecase
}

func NewDeliverableHandler(uc *deliverable.Usecase) *DeliverableHandler {
	return &DeliverableHandler{uc: uc}
}

type createDeliverableReq struct {
	ProjectID   string    `json:"project_id"  validate:"required,hex32"`
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"    validate:"required"`
}

func (h *DeliverableHandler) CreateDeliverable(c echo.Context) error {
	var req createDeliverableReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), deliverable.CreateInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type changeDeliverableStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress delivered approved rejected"`
	Note   string `json:"note"`
}

func (h *DeliverableHandler) ChangeStatus(c echo.Context) error {
	var req changeDeliverableStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.ChangeStatus(c.Request().Context(), c.Param("deliverable_id"), deliverableDomain.Status(req.Status), req.Note)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DeliverableHandler) GetDeliverable(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("deliverable_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DeliverableHandler) ListProjectDeliverables(c echo.Context) error {
	list, err := h.uc.ListByProject(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

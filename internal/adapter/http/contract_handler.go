package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	contractDomain "freelance-engagement-backend/internal/domain/contract"
	"freelance-engagement-backend/internal/usecase/contract"
)

type ContractHandler struct {
	uc *contract.Usecase
}

func NewContractHandler(uc *contract.Usecase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

type generateContractReq struct {
	ProjectID    string          `json:"project_id"    validate:"required,hex32"`
	Conditions   string          `json:"conditions"    validate:"required,min=10"`
	PaymentTerms string          `json:"payment_terms" validate:"required,min=5"`
	StartDate    time.Time       `json:"start_date"    validate:"required"`
	EndDate      time.Time       `json:"end_date"      validate:"required"`
	TotalValue   decimal.Decimal `json:"total_value"   validate:"-"`
}

func (h *ContractHandler) GenerateContract(c echo.Context) error {
	var req generateContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Generate(c.Request().Context(), contract.GenerateInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ContractHandler) SignContract(c echo.Context) error {
	dto, err := h.uc.Sign(c.Request().Context(), c.Param("contract_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ContractHandler) CancelContract(c echo.Context) error {
	dto, err := h.uc.Cancel(c.Request().Context(), c.Param("contract_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ContractHandler) GetContract(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("contract_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ContractHandler) GetProjectContract(c echo.Context) error {
	dto, err := h.uc.GetByProject(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ContractHandler) ListContracts(c echo.Context) error {
	status := contractDomain.Status(c.QueryParam("status"))
	list, err := h.uc.List(c.Request().Context(), status)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

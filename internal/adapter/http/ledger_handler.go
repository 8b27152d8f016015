package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"freelance-engagement-backend/internal/usecase/ledger"
)

type LedgerHandler struct {
	uc *ledger.Usecase
}

func NewLedgerHandler(uc *ledger.Usecase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

type recordEntryReq struct {
	ProjectID   *string         `json:"project_id"  validate:"omitempty,hex32"`
	Kind        string          `json:"kind"        validate:"required,oneof=income expense"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"      validate:"-"`
	Date        time.Time       `json:"date"        validate:"required"`
	Category    string          `json:"category"`
}

func (h *LedgerHandler) RecordEntry(c echo.Context) error {
	var req recordEntryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Record(c.Request().Context(), ledger.RecordInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// scopeFromQuery reads the optional project_id, client_id, from and to query
// params shared by the balance and entries endpoints.
func scopeFromQuery(c echo.Context) (ledger.BalanceScope, error) {
	scope := ledger.BalanceScope{
		ProjectID: c.QueryParam("project_id"),
		ClientID:  c.QueryParam("client_id"),
	}
	if raw := c.QueryParam("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return scope, err
		}
		scope.From = &t
	}
	if raw := c.QueryParam("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return scope, err
		}
		scope.To = &t
	}
	return scope, nil
}

func (h *LedgerHandler) GetBalance(c echo.Context) error {
	scope, err := scopeFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date range"})
	}
	report, err := h.uc.Balance(c.Request().Context(), scope)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *LedgerHandler) ListEntries(c echo.Context) error {
	scope, err := scopeFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date range"})
	}
	list, err := h.uc.Entries(c.Request().Context(), scope)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	proposalDomain "freelance-engagement-backend/internal/domain/proposal"
	"freelance-engagement-backend/internal/usecase/proposal"
)

type ProposalHandler struct{ uc *proposal.Usecase }

func NewProposalHandler(uc *proposal.Usecase) *ProposalHandler { return &ProposalHandler{uc: uc} }

type createProposalReq struct {
	ClientID    string          `json:"client_id"   validate:"required,hex32"`
	Title       string          `json:"title"       validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"       validate:"-"`
	Terms       string          `json:"terms"       validate:"required"`
	Deadline    time.Time       `json:"deadline"    validate:"required"`
}

func (h *ProposalHandler) CreateProposal(c echo.Context) error {
	var req createProposalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), proposal.CreateInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProposalHandler) GetProposal(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("proposal_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProposalHandler) ListProposals(c echo.Context) error {
	status := proposalDomain.Status(c.QueryParam("status"))
	list, err := h.uc.List(c.Request().Context(), status)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// AcceptProposal commits the accepted status and the derived project as one
// unit; the response carries both snapshots.
func (h *ProposalHandler) AcceptProposal(c echo.Context) error {
	result, err := h.uc.Accept(c.Request().Context(), c.Param("proposal_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ProposalHandler) RejectProposal(c echo.Context) error {
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("proposal_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

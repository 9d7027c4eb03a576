package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/application/ledger"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

// CheckoutHandler maneja el pago del carrito, los ajustes de saldo y el
// historial del ledger.
type CheckoutHandler struct {
	uc       *ledger.LedgerUseCase
	recorder auth.Recorder
	log      *logger.Logger
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *ledger.LedgerUseCase, recorder auth.Recorder, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, recorder: recorder, log: log}
}

// Checkout godoc
// @Summary      Pagar el carrito contra el saldo del socio autenticado
// @Tags         checkout
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Líneas del carrito"
// @Success      200  {object}  auth.Result[dto.CheckoutResponse]
// @Failure      400  {object}  auth.Result[dto.CheckoutResponse]
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{},
		func(caller *entity.User) (*dto.CheckoutResponse, error) {
			return h.uc.Checkout(c.Context(), caller.ID, in)
		})
	return writeResult(c, res)
}

// Adjustment godoc
// @Summary      Movimiento manual de saldo contra un producto administrativo (solo admin)
// @Tags         checkout
// @Security     Cookie
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "Ajuste"
// @Success      200  {object}  auth.Result[dto.TransactionResponse]
// @Router       /api/transactions/adjustment [post]
func (h *CheckoutHandler) Adjustment(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(caller *entity.User) (*dto.TransactionResponse, error) {
			out, err := h.uc.RecordAdjustment(c.Context(), in)
			if err != nil {
				return nil, err
			}
			h.recorder.Record(entity.ActionAdjustment, map[string]any{
				"user_id": in.UserID, "amount": in.Amount.String(),
			}, &caller.ID)
			return out, nil
		})
	return writeResult(c, res)
}

// History godoc
// @Summary      Historial del ledger de un socio (admin, o el propio socio)
// @Tags         checkout
// @Security     Cookie
// @Produce      json
// @Param        id      path   int  true   "ID del socio"
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  auth.Result[[]dto.TransactionResponse]
// @Router       /api/users/{id}/transactions [get]
func (h *CheckoutHandler) History(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c),
		auth.Requirement{AdminOnly: true, AllowSelf: true, SelfUserID: id},
		func(_ *entity.User) ([]dto.TransactionResponse, error) {
			return h.uc.History(id, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
		})
	return writeResult(c, res)
}

// Reconcile godoc
// @Summary      Comparar saldo materializado contra la suma del ledger (solo admin)
// @Tags         checkout
// @Security     Cookie
// @Produce      json
// @Param        id  path  int  true  "ID del socio"
// @Success      200  {object}  auth.Result[dto.ReconcileResponse]
// @Router       /api/users/{id}/reconcile [get]
func (h *CheckoutHandler) Reconcile(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	res := auth.WithAuth(h.log, GetCurrentUser(c), auth.Requirement{AdminOnly: true},
		func(_ *entity.User) (*dto.ReconcileResponse, error) {
			return h.uc.Reconcile(c.Context(), id)
		})
	return writeResult(c, res)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pedidos-api/internal/application/accounting"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
)

// TransactionHandler expone los dos libros.
type TransactionHandler struct {
	uc *accounting.LedgerUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *accounting.LedgerUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// ListMaterial godoc
// @Summary      Libro de materiales
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        party_id  query  string  false  "Filtrar por tercero"
// @Success      200  {array}  dto.MaterialTransactionResponse
// @Router       /api/material-transactions [get]
func (h *TransactionHandler) ListMaterial(c *fiber.Ctx) error {
	out, err := h.uc.ListMaterial(c.UserContext(), c.Query("party_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateFinancial godoc
// @Summary      Registrar pago o recibo
// @Description  payment resta el monto del saldo; receipt lo suma.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFinancialTransactionRequest  true  "Transacción"
// @Success      200   {object}  dto.FinancialTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/financial-transactions [post]
func (h *TransactionHandler) CreateFinancial(c *fiber.Ctx) error {
	var in dto.CreateFinancialTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateFinancialTransaction(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListFinancial godoc
// @Summary      Libro financiero
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        party_id  query  string  false  "Filtrar por tercero"
// @Success      200  {array}  dto.FinancialTransactionResponse
// @Router       /api/financial-transactions [get]
func (h *TransactionHandler) ListFinancial(c *fiber.Ctx) error {
	out, err := h.uc.ListFinancial(c.UserContext(), c.Query("party_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

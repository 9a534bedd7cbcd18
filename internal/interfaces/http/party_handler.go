package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pedidos-api/internal/application/accounting"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
)

// PartyHandler maneja terceros, su auditoría de saldo y el estado de cuenta.
type PartyHandler struct {
	uc        *usecase.PartyUseCase
	books     *accounting.LedgerUseCase
	statement *accounting.StatementUseCase
}

// NewPartyHandler construye el handler.
func NewPartyHandler(uc *usecase.PartyUseCase, books *accounting.LedgerUseCase, statement *accounting.StatementUseCase) *PartyHandler {
	return &PartyHandler{uc: uc, books: books, statement: statement}
}

// Create godoc
// @Summary      Crear tercero
// @Description  El saldo inicia en 0 y no se acepta desde el cliente.
// @Tags         parties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartyRequest  true  "Datos del tercero"
// @Success      200   {object}  dto.PartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parties [post]
func (h *PartyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tercero por ID
// @Tags         parties
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tercero"
// @Success      200  {object}  dto.PartyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parties/{id} [get]
func (h *PartyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar terceros
// @Tags         parties
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PartyResponse
// @Router       /api/parties [get]
func (h *PartyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tercero
// @Description  Pedidos y asientos del tercero se conservan como histórico.
// @Tags         parties
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tercero"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parties/{id} [delete]
func (h *PartyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Party deleted successfully"})
}

// Ledger godoc
// @Summary      Auditoría de saldo
// @Description  Compara el saldo en caché con la suma de ambos libros.
// @Tags         parties
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tercero"
// @Success      200  {object}  dto.PartyLedgerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parties/{id}/ledger [get]
func (h *PartyHandler) Ledger(c *fiber.Ctx) error {
	out, err := h.books.PartyLedger(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Estado de cuenta en PDF
// @Description  Ambos libros en orden cronológico con saldo acumulado.
// @Tags         parties
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del tercero"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parties/{id}/statement.pdf [get]
func (h *PartyHandler) Statement(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.statement.DownloadStatementPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

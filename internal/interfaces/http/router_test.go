package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/accounting"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/orders"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Pedidos-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Pedidos-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Pedidos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newAPI arma la API completa sobre el almacén en memoria.
func newAPI(t *testing.T, jwtSecret string) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	log := zerolog.Nop()
	partyRepo := memory.NewPartyRepository(store)

	books := accounting.NewLedgerUseCase(store, partyRepo,
		memory.NewMaterialTransactionRepository(store),
		memory.NewFinancialTransactionRepository(store), 1000, log)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(memory.NewProductRepository(store), 1000),
		PartyUC:     usecase.NewPartyUseCase(partyRepo, 1000),
		OrderUC:     orders.NewOrderUseCase(store, memory.NewOrderRepository(store), books, 1000, log),
		LedgerUC:    books,
		StatementUC: accounting.NewStatementUseCase(books, pdf.NewMarotoPDFGenerator()),
		JWTSecret:   jwtSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response, wantStatus int) T {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, string(raw))
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func createParty(t *testing.T, app *fiber.App, name string) dto.PartyResponse {
	t.Helper()
	return decode[dto.PartyResponse](t, call(t, app, http.MethodPost, "/api/parties", dto.CreatePartyRequest{Name: name}), http.StatusOK)
}

func line(qty, price, weight int64) dto.OrderLineDTO {
	return dto.OrderLineDTO{
		ProductID:   "prod-x",
		ProductName: "X",
		Quantity:    decimal.NewFromInt(qty),
		Price:       decimal.NewFromInt(price),
		Weight:      decimal.NewFromInt(weight),
	}
}

func createOrder(t *testing.T, app *fiber.App, partyID, orderType string, lines ...dto.OrderLineDTO) dto.OrderResponse {
	t.Helper()
	return decode[dto.OrderResponse](t, call(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		PartyID: partyID, OrderType: orderType, Products: lines,
	}), http.StatusOK)
}

func getParty(t *testing.T, app *fiber.App, id string) dto.PartyResponse {
	t.Helper()
	return decode[dto.PartyResponse](t, call(t, app, http.MethodGet, "/api/parties/"+id, nil), http.StatusOK)
}

func assertDecimal(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.NewFromInt(want).Equal(got), "esperado %d, obtenido %s", want, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldo y libros
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_EjemploCompletoDeSaldo(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Ferretería Central")
	assertDecimal(t, 0, party.Balance)

	sale := createOrder(t, app, party.ID, "sale", line(2, 100, 1), line(1, 150, 2))
	assertDecimal(t, 350, sale.TotalPrice)
	assertDecimal(t, 4, sale.TotalWeight)
	assert.Equal(t, "start", sale.Status)
	assertDecimal(t, 350, getParty(t, app, party.ID).Balance)

	purchase := createOrder(t, app, party.ID, "purchase", line(3, 80, 1))
	assertDecimal(t, 240, purchase.TotalPrice)
	assertDecimal(t, 110, getParty(t, app, party.ID).Balance)

	payment := decode[dto.FinancialTransactionResponse](t, call(t, app, http.MethodPost, "/api/financial-transactions",
		map[string]any{"party_id": party.ID, "amount": 100, "payment_type": "payment"}), http.StatusOK)
	assert.Equal(t, "cash", payment.PaymentMethod)
	assertDecimal(t, 10, getParty(t, app, party.ID).Balance)

	decode[dto.FinancialTransactionResponse](t, call(t, app, http.MethodPost, "/api/financial-transactions",
		map[string]any{"party_id": party.ID, "amount": 50, "payment_type": "receipt", "payment_method": "transfer"}), http.StatusOK)
	assertDecimal(t, 60, getParty(t, app, party.ID).Balance)

	materials := decode[[]dto.MaterialTransactionResponse](t,
		call(t, app, http.MethodGet, "/api/material-transactions?party_id="+party.ID, nil), http.StatusOK)
	require.Len(t, materials, 2)
	assert.Equal(t, purchase.ID, materials[0].OrderID, "más reciente primero")
	assertDecimal(t, -240, materials[0].Amount)
	assert.Equal(t, "Purchase order created", materials[0].Description)
	assertDecimal(t, 350, materials[1].Amount)
	assert.Equal(t, "Sale order created", materials[1].Description)

	financials := decode[[]dto.FinancialTransactionResponse](t,
		call(t, app, http.MethodGet, "/api/financial-transactions?party_id="+party.ID, nil), http.StatusOK)
	require.Len(t, financials, 2)
	assert.Equal(t, "receipt", financials[0].PaymentType)

	audit := decode[dto.PartyLedgerResponse](t, call(t, app, http.MethodGet, "/api/parties/"+party.ID+"/ledger", nil), http.StatusOK)
	assert.True(t, audit.Consistent)
	assertDecimal(t, 110, audit.MaterialTotal)
	assertDecimal(t, -50, audit.FinancialTotal)
	assertDecimal(t, 60, audit.LedgerTotal)
}

func TestAPI_MontosViajanComoNumeros(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	resp := call(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		PartyID: party.ID, OrderType: "sale", Products: []dto.OrderLineDTO{line(2, 100, 1)},
	})
	raw := decode[map[string]any](t, resp, http.StatusOK)

	assert.IsType(t, float64(0), raw["total_price"])
	assert.Nil(t, raw["reference_order_id"])
}

func TestAPI_TransaccionFinancieraInvalida(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")

	cases := []map[string]any{
		{"party_id": party.ID, "amount": 10, "payment_type": "refund"},
		{"party_id": party.ID, "amount": 0, "payment_type": "payment"},
		{"party_id": party.ID, "amount": -5, "payment_type": "receipt"},
		{"party_id": "no-es-uuid", "amount": 10, "payment_type": "payment"},
	}
	for _, body := range cases {
		resp := call(t, app, http.MethodPost, "/api/financial-transactions", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		resp.Body.Close()
	}
	assertDecimal(t, 0, getParty(t, app, party.ID).Balance)
}

func TestAPI_TransaccionFinancieraTerceroInexistente(t *testing.T) {
	app := newAPI(t, "")
	resp := call(t, app, http.MethodPost, "/api/financial-transactions", map[string]any{
		"party_id": "6f1c2c1e-58c4-4b8e-9a57-3f3b8d3b2a10", "amount": 10, "payment_type": "payment",
	})
	out := decode[dto.ErrorResponse](t, resp, http.StatusNotFound)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos y prioridades
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_PrioridadesSecuenciales(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	other := createParty(t, app, "Otro")

	for i := 0; i < 4; i++ {
		o := createOrder(t, app, party.ID, "sale", line(1, 10, 1))
		assert.Equal(t, i, o.Priority)
	}
	// La cola es por tercero.
	assert.Equal(t, 0, createOrder(t, app, other.ID, "purchase", line(1, 10, 1)).Priority)

	list := decode[[]dto.OrderResponse](t, call(t, app, http.MethodGet, "/api/orders?party_id="+party.ID, nil), http.StatusOK)
	require.Len(t, list, 4)
	for i, o := range list {
		assert.Equal(t, i, o.Priority)
	}

	purchases := decode[[]dto.OrderResponse](t, call(t, app, http.MethodGet, "/api/orders?order_type=purchase", nil), http.StatusOK)
	require.Len(t, purchases, 1)
	assert.Equal(t, other.ID, purchases[0].PartyID)
}

func TestAPI_CompletarRenumeraLaCola(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	a := createOrder(t, app, party.ID, "sale", line(1, 10, 1))
	b := createOrder(t, app, party.ID, "sale", line(1, 10, 1))
	c := createOrder(t, app, party.ID, "sale", line(1, 10, 1))

	decode[dto.OrderResponse](t, call(t, app, http.MethodPatch, "/api/orders/"+b.ID, map[string]any{"status": "inprocess"}), http.StatusOK)
	done := decode[dto.OrderResponse](t, call(t, app, http.MethodPatch, "/api/orders/"+a.ID,
		map[string]any{"status": "completed", "priority": 3}), http.StatusOK)
	assert.Equal(t, "completed", done.Status)
	assert.Equal(t, 9999, done.Priority)

	list := decode[[]dto.OrderResponse](t, call(t, app, http.MethodGet, "/api/orders?party_id="+party.ID, nil), http.StatusOK)
	require.Len(t, list, 3)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, 0, list[0].Priority)
	assert.Equal(t, "inprocess", list[0].Status)
	assert.Equal(t, c.ID, list[1].ID)
	assert.Equal(t, 1, list[1].Priority)
	assert.Equal(t, a.ID, list[2].ID)

	// Un pedido nuevo va detrás de los activos.
	assert.Equal(t, 2, createOrder(t, app, party.ID, "sale", line(1, 10, 1)).Priority)
}

func TestAPI_PedidoCompletadoEsInmutable(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	o := createOrder(t, app, party.ID, "sale", line(1, 10, 1))
	decode[dto.OrderResponse](t, call(t, app, http.MethodPatch, "/api/orders/"+o.ID, map[string]any{"status": "completed"}), http.StatusOK)

	for _, body := range []map[string]any{
		{"status": "inprocess"},
		{"priority": 0},
		{"products": []dto.OrderLineDTO{line(5, 10, 1)}},
	} {
		out := decode[dto.ErrorResponse](t, call(t, app, http.MethodPatch, "/api/orders/"+o.ID, body), http.StatusBadRequest)
		assert.Equal(t, "INVALID_STATE", out.Code)
	}
}

func TestAPI_EditarLineasNoTocaLosLibros(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	o := createOrder(t, app, party.ID, "sale", line(2, 100, 1))

	updated := decode[dto.OrderResponse](t, call(t, app, http.MethodPatch, "/api/orders/"+o.ID,
		map[string]any{"products": []dto.OrderLineDTO{line(5, 100, 2)}}), http.StatusOK)
	assertDecimal(t, 500, updated.TotalPrice)
	assertDecimal(t, 10, updated.TotalWeight)

	assertDecimal(t, 200, getParty(t, app, party.ID).Balance)
	materials := decode[[]dto.MaterialTransactionResponse](t,
		call(t, app, http.MethodGet, "/api/material-transactions?party_id="+party.ID, nil), http.StatusOK)
	require.Len(t, materials, 1)
	assertDecimal(t, 200, materials[0].Amount)
}

func TestAPI_PrioridadManual(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	o := createOrder(t, app, party.ID, "sale", line(1, 10, 1))

	out := decode[dto.OrderResponse](t, call(t, app, http.MethodPatch, "/api/orders/"+o.ID, map[string]any{"priority": 7}), http.StatusOK)
	assert.Equal(t, 7, out.Priority)
	assert.Equal(t, "start", out.Status)
}

func TestAPI_Reordenar(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	a := createOrder(t, app, party.ID, "sale", line(1, 10, 1))
	b := createOrder(t, app, party.ID, "sale", line(1, 10, 1))
	c := createOrder(t, app, party.ID, "sale", line(1, 10, 1))

	ack := decode[dto.MessageResponse](t, call(t, app, http.MethodPost, "/api/orders/reorder", []string{b.ID, a.ID, c.ID}), http.StatusOK)
	assert.NotEmpty(t, ack.Message)

	got := func(id string) int {
		return decode[dto.OrderResponse](t, call(t, app, http.MethodGet, "/api/orders/"+id, nil), http.StatusOK).Priority
	}
	assert.Equal(t, 1, got(a.ID))
	assert.Equal(t, 0, got(b.ID))
	assert.Equal(t, 2, got(c.ID))
}

func TestAPI_ReordenarConIDInexistenteNoCambiaNada(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	a := createOrder(t, app, party.ID, "sale", line(1, 10, 1))
	b := createOrder(t, app, party.ID, "sale", line(1, 10, 1))

	resp := call(t, app, http.MethodPost, "/api/orders/reorder", []string{b.ID, "6f1c2c1e-58c4-4b8e-9a57-3f3b8d3b2a10", a.ID})
	decode[dto.ErrorResponse](t, resp, http.StatusNotFound)

	first := decode[dto.OrderResponse](t, call(t, app, http.MethodGet, "/api/orders/"+a.ID, nil), http.StatusOK)
	assert.Equal(t, 0, first.Priority)
}

func TestAPI_CrearPedidoErrores(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	missing := "6f1c2c1e-58c4-4b8e-9a57-3f3b8d3b2a10"

	resp := call(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{PartyID: missing, OrderType: "sale", Products: []dto.OrderLineDTO{line(1, 1, 1)}})
	decode[dto.ErrorResponse](t, resp, http.StatusNotFound)

	resp = call(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{PartyID: party.ID, OrderType: "rental", Products: []dto.OrderLineDTO{line(1, 1, 1)}})
	decode[dto.ErrorResponse](t, resp, http.StatusBadRequest)

	resp = call(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{PartyID: party.ID, OrderType: "sale"})
	decode[dto.ErrorResponse](t, resp, http.StatusBadRequest)

	resp = call(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		PartyID: party.ID, OrderType: "sale", Products: []dto.OrderLineDTO{line(1, 1, 1)}, ReferenceOrderID: &missing,
	})
	decode[dto.ErrorResponse](t, resp, http.StatusNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	raw, err := app.Test(req, -1)
	require.NoError(t, err)
	out := decode[dto.ErrorResponse](t, raw, http.StatusBadRequest)
	assert.Equal(t, "INVALID_BODY", out.Code)

	assertDecimal(t, 0, getParty(t, app, party.ID).Balance)
}

func TestAPI_PedidoConReferencia(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	first := createOrder(t, app, party.ID, "sale", line(1, 10, 1))

	second := decode[dto.OrderResponse](t, call(t, app, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		PartyID: party.ID, OrderType: "purchase", Products: []dto.OrderLineDTO{line(1, 10, 1)}, ReferenceOrderID: &first.ID,
	}), http.StatusOK)

	require.NotNil(t, second.ReferenceOrderID)
	assert.Equal(t, first.ID, *second.ReferenceOrderID)
}

func TestAPI_PedidoInexistenteOMalformado(t *testing.T) {
	app := newAPI(t, "")

	decode[dto.ErrorResponse](t, call(t, app, http.MethodGet, "/api/orders/6f1c2c1e-58c4-4b8e-9a57-3f3b8d3b2a10", nil), http.StatusNotFound)
	decode[dto.ErrorResponse](t, call(t, app, http.MethodPatch, "/api/orders/6f1c2c1e-58c4-4b8e-9a57-3f3b8d3b2a10", map[string]any{"status": "completed"}), http.StatusNotFound)
	decode[dto.ErrorResponse](t, call(t, app, http.MethodGet, "/api/orders/abc", nil), http.StatusBadRequest)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CatalogoDeProductos(t *testing.T) {
	app := newAPI(t, "")
	created := decode[dto.ProductResponse](t, call(t, app, http.MethodPost, "/api/products",
		map[string]any{"name": "X", "price": 100, "weight": 1.5, "description": "demo"}), http.StatusOK)
	assert.Equal(t, "X", created.Name)

	list := decode[[]dto.ProductResponse](t, call(t, app, http.MethodGet, "/api/products", nil), http.StatusOK)
	require.Len(t, list, 1)

	msg := decode[dto.MessageResponse](t, call(t, app, http.MethodDelete, "/api/products/"+created.ID, nil), http.StatusOK)
	assert.NotEmpty(t, msg.Message)
	decode[dto.ErrorResponse](t, call(t, app, http.MethodDelete, "/api/products/"+created.ID, nil), http.StatusNotFound)
	decode[dto.ErrorResponse](t, call(t, app, http.MethodGet, "/api/products/"+created.ID, nil), http.StatusNotFound)
}

func TestAPI_BorrarTerceroConservaHistorico(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	o := createOrder(t, app, party.ID, "sale", line(1, 10, 1))

	decode[dto.MessageResponse](t, call(t, app, http.MethodDelete, "/api/parties/"+party.ID, nil), http.StatusOK)
	decode[dto.ErrorResponse](t, call(t, app, http.MethodGet, "/api/parties/"+party.ID, nil), http.StatusNotFound)

	kept := decode[dto.OrderResponse](t, call(t, app, http.MethodGet, "/api/orders/"+o.ID, nil), http.StatusOK)
	assert.Equal(t, "Cliente", kept.PartyName)
}

func TestAPI_EstadoDeCuentaPDF(t *testing.T) {
	app := newAPI(t, "")
	party := createParty(t, app, "Cliente")
	createOrder(t, app, party.ID, "sale", line(2, 100, 1))

	resp := call(t, app, http.MethodGet, "/api/parties/"+party.ID+"/statement.pdf", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "estado-cuenta-"+party.ID+".pdf")
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación opcional
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ConSecretoExigeToken(t *testing.T) {
	app := newAPI(t, testJWTSecret)

	resp := call(t, app, http.MethodGet, "/api/parties", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	operator := tokenForRole(t, pkgjwt.RoleOperator)
	party := decode[dto.PartyResponse](t, call(t, app, http.MethodPost, "/api/parties",
		dto.CreatePartyRequest{Name: "Cliente"}, "Authorization", operator), http.StatusOK)

	// Borrar es solo para admin.
	resp = call(t, app, http.MethodDelete, "/api/parties/"+party.ID, nil, "Authorization", operator)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	decode[dto.MessageResponse](t, call(t, app, http.MethodDelete, "/api/parties/"+party.ID, nil,
		"Authorization", tokenForRole(t, pkgjwt.RoleAdmin)), http.StatusOK)
}

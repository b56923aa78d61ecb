package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Mrco45/FLEXFINAL/internal/models"
	"github.com/Mrco45/FLEXFINAL/internal/services"
	"github.com/Mrco45/FLEXFINAL/internal/validation"
)

// InvoiceHandler serves printable invoice documents.
type InvoiceHandler struct {
	store *services.OrderStore
}

// NewInvoiceHandler constructs InvoiceHandler.
func NewInvoiceHandler(store *services.OrderStore) *InvoiceHandler {
	return &InvoiceHandler{store: store}
}

// PrintOrder renders the invoice for a saved order.
func (h *InvoiceHandler) PrintOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	order, err := h.store.Get(c.Context(), id)
	if err != nil {
		return mapStoreError(err)
	}

	html, err := services.RenderInvoice(order)
	if err != nil {
		return err
	}

	c.Type("html", "utf-8")
	return c.Send(html)
}

// Preview renders the invoice for an in-progress draft that has not been
// persisted. The draft is not validated: a form with no items yet still
// prints, with a placeholder row.
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var payload validation.OrderPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	order := payload.Order()
	if order.Status == "" {
		order.Status = models.StatusNewOrder
	}
	if order.Number == "" {
		order.Number = "Draft"
	}

	html, err := services.RenderInvoice(&order)
	if err != nil {
		return err
	}

	c.Type("html", "utf-8")
	return c.Send(html)
}

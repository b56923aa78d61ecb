package handlers

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/Mrco45/FLEXFINAL/internal/services"
	"github.com/Mrco45/FLEXFINAL/internal/validation"
)

// OrderHandler manages the order CRUD surface and the live feed.
type OrderHandler struct {
	store    *services.OrderStore
	validate *validatorv10.Validate
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(store *services.OrderStore, validate *validatorv10.Validate) *OrderHandler {
	return &OrderHandler{store: store, validate: validate}
}

// ListOrders returns the full collection, optionally narrowed by the
// history view's search and status filters. Filtering runs in memory over
// the materialized list, matching the original dashboard exactly.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.store.List(c.Context())
	if err != nil {
		return err
	}

	filtered := services.FilterOrders(orders, c.Query("search"), c.Query("status", services.StatusFilterAll))

	return c.JSON(fiber.Map{
		"success": true,
		"data":    filtered,
		"total":   len(filtered),
	})
}

// GetOrder returns a single order.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	order, err := h.store.Get(c.Context(), id)
	if err != nil {
		return mapStoreError(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// CreateOrder validates a draft order and persists it. The client never
// supplies id or totalCost; both are assigned server-side.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	payload, err := h.bindOrderPayload(c)
	if err != nil {
		return err
	}

	order := payload.Order()
	if err := h.store.Create(c.Context(), &order); err != nil {
		return mapStoreError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

// UpdateOrder is a full-document replace. When the payload carries the
// updatedAt it was edited against, a stale copy is rejected with 409.
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	payload, err := h.bindOrderPayload(c)
	if err != nil {
		return err
	}

	order := payload.Order()
	if err := h.store.Update(c.Context(), id, &order, payload.BaseUpdatedAt); err != nil {
		return mapStoreError(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// DeleteOrder removes an order. Terminal orders are locked.
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		return mapStoreError(err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// StreamOrders serves the live subscription as server-sent events: a
// snapshot of the whole collection first, then incremental mutation events.
func (h *OrderHandler) StreamOrders(c *fiber.Ctx) error {
	events, cancel, err := h.store.Subscribe(c.Context())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for ev := range events {
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, payload); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))

	return nil
}

func (h *OrderHandler) bindOrderPayload(c *fiber.Ctx) (validation.OrderPayload, error) {
	var payload validation.OrderPayload
	if err := c.BodyParser(&payload); err != nil {
		return payload, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.validate.Struct(payload); err != nil {
		return payload, &ValidationError{Fields: validation.ErrorsToMap(err)}
	}
	return payload, nil
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrOrderLocked), errors.Is(err, services.ErrVersionConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mrco45/FLEXFINAL/internal/services"
)

// CalcHandler serves the form's side calculator.
type CalcHandler struct{}

// NewCalcHandler constructs CalcHandler.
func NewCalcHandler() *CalcHandler {
	return &CalcHandler{}
}

type calcRequest struct {
	Expression string `json:"expression"`
}

// Evaluate computes a constrained arithmetic expression. Only numbers and
// + - * / ( ) are accepted; anything else is a 400.
func (h *CalcHandler) Evaluate(c *fiber.Ctx) error {
	var req calcRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := services.EvaluateExpression(req.Expression)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{"success": true, "result": result})
}

package validation

import (
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/Mrco45/FLEXFINAL/internal/models"
)

// ItemPayload is one line item as submitted by the form.
type ItemPayload struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}

// AttachmentPayload is an already-uploaded file reference attached to an order.
type AttachmentPayload struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type"`
	Size    int64  `json:"size" validate:"gte=0"`
	DataURL string `json:"dataUrl" validate:"required"`
}

// OrderPayload is the request body for creating or replacing an order.
// totalCost is intentionally absent: it is always recomputed server-side.
// BaseUpdatedAt optionally carries the updatedAt the client edited against;
// when present a mismatch rejects the write instead of silently clobbering.
type OrderPayload struct {
	CustomerName  string              `json:"customerName" validate:"required"`
	PhoneNumber   string              `json:"phoneNumber" validate:"required"`
	OrderDate     string              `json:"orderDate" validate:"omitempty,datetime=2006-01-02"`
	Items         []ItemPayload       `json:"items" validate:"required,min=1,dive"`
	AmountPaid    float64             `json:"amountPaid" validate:"gte=0"`
	Attachments   []AttachmentPayload `json:"attachments" validate:"dive"`
	Status        string              `json:"status"`
	BaseUpdatedAt *time.Time          `json:"updatedAt"`
}

// Order converts the payload into a model. Item positions follow the slice
// order so invoices render lines as they were entered.
func (p OrderPayload) Order() models.Order {
	order := models.Order{
		CustomerName: p.CustomerName,
		PhoneNumber:  p.PhoneNumber,
		OrderDate:    p.OrderDate,
		AmountPaid:   p.AmountPaid,
		Status:       models.Status(p.Status),
	}

	for i, item := range p.Items {
		order.Items = append(order.Items, models.OrderItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Cost:        item.Cost,
			Width:       item.Width,
			Height:      item.Height,
			Position:    i,
		})
	}

	for _, att := range p.Attachments {
		order.Attachments = append(order.Attachments, models.AttachmentFile{
			Name:    att.Name,
			Type:    att.Type,
			Size:    att.Size,
			DataURL: att.DataURL,
		})
	}

	order.Recalculate()
	return order
}

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterStructValidation(orderPayloadValidation, OrderPayload{})

	return v
}

// orderPayloadValidation checks the fields the tag syntax cannot express:
// a submitted status must be one of the known workflow statuses.
func orderPayloadValidation(sl validatorv10.StructLevel) {
	payload := sl.Current().Interface().(OrderPayload)

	if payload.Status != "" && !models.Status(payload.Status).Valid() {
		sl.ReportError(payload.Status, "status", "Status", "order_status", "")
	}
}

// ErrorsToMap flattens validator errors into field -> message pairs for the
// response body.
func ErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.StructNamespace()] = message(fe)
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}

func message(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "needs at least " + fe.Param() + " entry"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "order_status":
		return "is not a known order status"
	}
	return fe.Error()
}

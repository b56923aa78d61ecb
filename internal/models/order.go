package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the workflow state of an order. Orders move through
// New Order -> In Progress -> Ready for Pickup -> Completed; Cancelled is
// reachable from any non-terminal state. Completed and Cancelled are
// terminal: the store rejects further writes once one is set.
type Status string

const (
	StatusNewOrder       Status = "New Order"
	StatusInProgress     Status = "In Progress"
	StatusReadyForPickup Status = "Ready for Pickup"
	StatusCompleted      Status = "Completed"
	StatusCancelled      Status = "Cancelled"
)

// AllStatuses lists every valid status in workflow order.
var AllStatuses = []Status{
	StatusNewOrder,
	StatusInProgress,
	StatusReadyForPickup,
	StatusCompleted,
	StatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether s allows no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Order is a single customer print job with items, payment and status.
type Order struct {
	BaseModel
	Number          string           `gorm:"uniqueIndex" json:"number"`
	CustomerName    string           `json:"customerName"`
	PhoneNumber     string           `json:"phoneNumber"`
	OrderDate       string           `json:"orderDate"` // YYYY-MM-DD
	Items           []OrderItem      `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	TotalCost       float64          `json:"totalCost"`
	AmountPaid      float64          `json:"amountPaid"`
	AmountRemaining float64          `gorm:"-" json:"amountRemaining"`
	Attachments     []AttachmentFile `gorm:"constraint:OnDelete:CASCADE" json:"attachments"`
	Status          Status           `json:"status"`
}

// AfterFind derives the non-stored balance whenever an order is loaded.
func (o *Order) AfterFind(tx *gorm.DB) error {
	o.AmountRemaining = o.TotalCost - o.AmountPaid
	return nil
}

// Recalculate recomputes the derived money fields from the current items.
// Both create and update go through this, so a stored totalCost can never
// drift from its items.
func (o *Order) Recalculate() {
	o.TotalCost = ComputeTotal(o.Items)
	o.AmountRemaining = o.TotalCost - o.AmountPaid
}

// OrderItem is one priced line within an order. Position preserves the
// order the lines were entered in, which is significant for invoices.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	Cost        float64   `json:"cost"`
	Width       float64   `json:"width,omitempty"`
	Height      float64   `json:"height,omitempty"`
	Position    int       `json:"-"`
}

// LineTotal is the item's contribution to the order total.
func (i OrderItem) LineTotal() float64 {
	return i.Quantity * i.Cost
}

// AttachmentFile references a file uploaded for an order. DataURL holds the
// resolved public URL, not an inline payload.
type AttachmentFile struct {
	BaseModel
	OrderID uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Size    int64     `json:"size"`
	DataURL string    `gorm:"column:data_url" json:"dataUrl"`
}

// ComputeTotal sums quantity x cost over the given items.
func ComputeTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

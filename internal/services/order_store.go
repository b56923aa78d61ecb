package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mrco45/FLEXFINAL/internal/models"
)

var (
	// ErrOrderNotFound is returned when the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderLocked is returned for writes against a Completed or Cancelled order.
	ErrOrderLocked = errors.New("order is completed or cancelled and can no longer be modified")
	// ErrVersionConflict is returned when a guarded update was based on a stale copy.
	ErrVersionConflict = errors.New("order was modified by someone else, reload and retry")
	// ErrInvalidStatus is returned when a write carries an unknown status value.
	ErrInvalidStatus = errors.New("unknown order status")
)

// OrderStore is the single read/write path to the orders collection. Every
// mutation recomputes totalCost from the submitted items and is fanned out
// to live subscribers, so all views stay in sync through one source of truth.
type OrderStore struct {
	db  *gorm.DB
	hub *orderHub
}

// NewOrderStore constructs an OrderStore over the given database.
func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db, hub: newOrderHub()}
}

// List returns the entire collection ordered by orderDate descending.
// The whole list is always materialized; filtering happens in memory.
func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", itemsInPosition).
		Preload("Attachments").
		Order("order_date desc, created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Get loads a single order with its items and attachments.
func (s *OrderStore) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", itemsInPosition).
		Preload("Attachments").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// Create persists a draft order. The ID and number are assigned here, the
// date defaults to today, the status defaults to New Order and totalCost is
// recomputed regardless of what the caller supplied.
func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	if order.Status == "" {
		order.Status = models.StatusNewOrder
	}
	if !order.Status.Valid() {
		return ErrInvalidStatus
	}
	if order.OrderDate == "" {
		order.OrderDate = time.Now().Format("2006-01-02")
	}
	if order.Number == "" {
		order.Number = generateOrderNumber()
	}
	normalize(order)

	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return err
	}

	order.Recalculate()
	s.hub.broadcast(OrderEvent{Type: OrderCreated, Order: order, ID: order.ID.String()})
	return nil
}

// Update is a full-document replace: the stored items and attachments are
// swapped for the submitted ones and totalCost is recomputed. Terminal
// orders reject the write. When baseVersion carries the updatedAt the client
// edited against, a mismatch rejects the write instead of clobbering.
func (s *OrderStore) Update(ctx context.Context, id uuid.UUID, order *models.Order, baseVersion *time.Time) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if current.Status.Terminal() {
		return ErrOrderLocked
	}
	if baseVersion != nil && !baseVersion.Equal(current.UpdatedAt) {
		return ErrVersionConflict
	}
	if order.Status == "" {
		order.Status = current.Status
	}
	if !order.Status.Valid() {
		return ErrInvalidStatus
	}

	order.ID = current.ID
	order.CreatedAt = current.CreatedAt
	order.Number = current.Number
	if order.OrderDate == "" {
		order.OrderDate = current.OrderDate
	}
	for i := range order.Items {
		order.Items[i].OrderID = current.ID
	}
	for i := range order.Attachments {
		order.Attachments[i].OrderID = current.ID
	}
	normalize(order)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", current.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", current.ID).Delete(&models.AttachmentFile{}).Error; err != nil {
			return err
		}

		// Children are re-created explicitly so the replace is exact.
		items := order.Items
		attachments := order.Attachments
		order.Items = nil
		order.Attachments = nil

		if err := tx.Save(order).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		if len(attachments) > 0 {
			if err := tx.Create(&attachments).Error; err != nil {
				return err
			}
		}

		order.Items = items
		order.Attachments = attachments
		return nil
	})
	if err != nil {
		return err
	}

	order.Recalculate()
	s.hub.broadcast(OrderEvent{Type: OrderUpdated, Order: order, ID: order.ID.String()})
	return nil
}

// Delete removes an order and its children. Terminal orders are locked like
// any other write.
func (s *OrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.Status.Terminal() {
		return ErrOrderLocked
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.AttachmentFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	s.hub.broadcast(OrderEvent{Type: OrderDeleted, ID: id.String()})
	return nil
}

// Subscribe opens a live feed over the collection. The first event is a
// snapshot of the full ordered list, followed by incremental mutation
// events. The returned cancel func must be called when the consumer is done.
func (s *OrderStore) Subscribe(ctx context.Context) (<-chan OrderEvent, func(), error) {
	ch, cancel := s.hub.subscribe(16)

	orders, err := s.List(ctx)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	select {
	case ch <- OrderEvent{Type: OrderSnapshot, Orders: orders}:
	default:
	}
	return ch, cancel, nil
}

// normalize fixes item positions to the slice order and recomputes totals
// so the stored totalCost can never diverge from the items.
func normalize(order *models.Order) {
	for i := range order.Items {
		order.Items[i].Position = i
	}
	order.Recalculate()
}

func itemsInPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

func generateOrderNumber() string {
	ref := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "FLEX-" + ref[:8]
}

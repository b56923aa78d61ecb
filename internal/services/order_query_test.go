package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mrco45/FLEXFINAL/internal/models"
)

func sampleOrders() []models.Order {
	orderA := models.Order{
		Number:       "FLEX-AAAA0001",
		CustomerName: "Omar",
		PhoneNumber:  "01001234567",
		OrderDate:    "2026-08-31",
		Status:       models.StatusNewOrder,
		Items:        []models.OrderItem{{Description: "Banner", Quantity: 2, Cost: 100}},
		AmountPaid:   50,
	}
	orderA.ID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	orderA.Recalculate()

	orderB := models.Order{
		Number:       "FLEX-BBBB0002",
		CustomerName: "Sara",
		PhoneNumber:  "01209876543",
		OrderDate:    "2026-08-30",
		Status:       models.StatusCompleted,
		Items:        []models.OrderItem{{Description: "Business cards", Quantity: 500, Cost: 0.5}},
		AmountPaid:   250,
	}
	orderB.ID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	orderB.Recalculate()

	return []models.Order{orderA, orderB}
}

func TestFilterOrdersSearchNameCaseInsensitive(t *testing.T) {
	orders := sampleOrders()

	got := FilterOrders(orders, "omar", StatusFilterAll)

	require.Len(t, got, 1)
	assert.Equal(t, "Omar", got[0].CustomerName)
}

func TestFilterOrdersSearchPhoneCaseSensitiveSubstring(t *testing.T) {
	orders := sampleOrders()

	assert.Len(t, FilterOrders(orders, "0120", StatusFilterAll), 1)
	assert.Len(t, FilterOrders(orders, "0100", StatusFilterAll), 1)
	assert.Len(t, FilterOrders(orders, "999", StatusFilterAll), 0)
}

func TestFilterOrdersSearchItemDescription(t *testing.T) {
	orders := sampleOrders()

	got := FilterOrders(orders, "business CARDS", StatusFilterAll)

	require.Len(t, got, 1)
	assert.Equal(t, "Sara", got[0].CustomerName)
}

func TestFilterOrdersSearchByIDAndNumber(t *testing.T) {
	orders := sampleOrders()

	assert.Len(t, FilterOrders(orders, "11111111", StatusFilterAll), 1)
	assert.Len(t, FilterOrders(orders, "flex-bbbb", StatusFilterAll), 1)
}

func TestFilterOrdersStatus(t *testing.T) {
	orders := sampleOrders()

	assert.Len(t, FilterOrders(orders, "", StatusFilterAll), 2)
	assert.Len(t, FilterOrders(orders, "", ""), 2)

	completed := FilterOrders(orders, "", string(models.StatusCompleted))
	require.Len(t, completed, 1)
	assert.Equal(t, models.StatusCompleted, completed[0].Status)

	assert.Len(t, FilterOrders(orders, "", string(models.StatusCancelled)), 0)
}

func TestFilterOrdersBlankSearchMatchesAll(t *testing.T) {
	orders := sampleOrders()
	assert.Len(t, FilterOrders(orders, "   ", StatusFilterAll), 2)
}

func TestComputeMetrics(t *testing.T) {
	orders := sampleOrders()

	m := ComputeMetrics(orders, "2026-08-31")

	assert.Equal(t, 2, m.TotalOrders)
	assert.Equal(t, 1, m.TodayOrders)
	assert.Equal(t, 1, m.NewOrders)
	assert.Equal(t, 1, m.Completed)
	assert.Equal(t, 0, m.InProgress)
	assert.Equal(t, 50.0, m.TodayRevenue)
	assert.Equal(t, 450.0, m.TotalMoney)  // 200 + 250
	assert.Equal(t, 300.0, m.TotalReceived)
	assert.Equal(t, 150.0, m.PendingAmount)
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(nil, "2026-08-31")
	assert.Equal(t, DashboardMetrics{}, m)
}

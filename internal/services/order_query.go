package services

import (
	"strings"

	"github.com/Mrco45/FLEXFINAL/internal/models"
)

// StatusFilterAll matches every status in FilterOrders.
const StatusFilterAll = "All"

// FilterOrders applies the history view's search semantics over the full
// in-memory list. Status is an exact match ("All" or blank matches
// everything). Search matches the customer name, order id or number and any
// item description case-insensitively; the phone number is a case-sensitive
// substring match, as in the original dashboard.
func FilterOrders(orders []models.Order, search, status string) []models.Order {
	search = strings.TrimSpace(search)
	lower := strings.ToLower(search)

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if status != "" && status != StatusFilterAll && string(order.Status) != status {
			continue
		}
		if search != "" && !matchesSearch(order, search, lower) {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered
}

func matchesSearch(order models.Order, search, lower string) bool {
	if strings.Contains(strings.ToLower(order.CustomerName), lower) {
		return true
	}
	if strings.Contains(order.PhoneNumber, search) {
		return true
	}
	if strings.Contains(strings.ToLower(order.ID.String()), lower) {
		return true
	}
	if strings.Contains(strings.ToLower(order.Number), lower) {
		return true
	}
	for _, item := range order.Items {
		if strings.Contains(strings.ToLower(item.Description), lower) {
			return true
		}
	}
	return false
}

// DashboardMetrics aggregates the order list for the dashboard view.
type DashboardMetrics struct {
	TotalOrders    int     `json:"totalOrders"`
	TodayOrders    int     `json:"todayOrders"`
	NewOrders      int     `json:"newOrders"`
	InProgress     int     `json:"inProgress"`
	ReadyForPickup int     `json:"readyForPickup"`
	Completed      int     `json:"completed"`
	Cancelled      int     `json:"cancelled"`
	TodayRevenue   float64 `json:"todayRevenue"`
	TotalMoney     float64 `json:"totalMoney"`
	TotalReceived  float64 `json:"totalReceived"`
	PendingAmount  float64 `json:"pendingAmount"`
}

// ComputeMetrics is a pure aggregation over the current list. "Today" is an
// exact calendar-date string match against the given YYYY-MM-DD value.
func ComputeMetrics(orders []models.Order, today string) DashboardMetrics {
	m := DashboardMetrics{TotalOrders: len(orders)}

	for _, order := range orders {
		switch order.Status {
		case models.StatusNewOrder:
			m.NewOrders++
		case models.StatusInProgress:
			m.InProgress++
		case models.StatusReadyForPickup:
			m.ReadyForPickup++
		case models.StatusCompleted:
			m.Completed++
		case models.StatusCancelled:
			m.Cancelled++
		}

		if order.OrderDate == today {
			m.TodayOrders++
			m.TodayRevenue += order.AmountPaid
		}

		m.TotalMoney += order.TotalCost
		m.TotalReceived += order.AmountPaid
		m.PendingAmount += order.TotalCost - order.AmountPaid
	}
	return m
}

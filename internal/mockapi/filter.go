package mockapi

import (
	"strings"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/entity"
)

// PageSize is the fixed listing page size of the remote API.
const PageSize = 20

// Query mirrors the /orders query parameters. Filters are ANDed; search is
// a case-insensitive substring match, partner and status are exact.
type Query struct {
	Page    int
	Search  string
	Partner string
	Status  string
}

// Filter returns the orders matching every supplied filter, preserving
// input order.
func Filter(orders []entity.Order, q Query) []entity.Order {
	matched := make([]entity.Order, 0, len(orders))
	for _, order := range orders {
		if matches(order, q) {
			matched = append(matched, order)
		}
	}
	return matched
}

func matches(order entity.Order, q Query) bool {
	if q.Partner != "" && order.DeliveryPartner != q.Partner {
		return false
	}
	if q.Status != "" && order.Status != q.Status {
		return false
	}
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(order.CustomerName), needle) ||
		strings.Contains(strings.ToLower(order.CustomerPhone), needle) ||
		strings.Contains(strings.ToLower(order.TrackingCode), needle)
}

// Paginate slices one page out of the filtered set. Pagination metadata
// reflects the filtered size; total_pages is at least 1 and an out-of-range
// page yields an empty slice.
func Paginate(filtered []entity.Order, page int) entity.OrdersResponse {
	if page <= 0 {
		page = 1
	}

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pageOrders := make([]entity.Order, 0, end-start)
	pageOrders = append(pageOrders, filtered[start:end]...)

	return entity.OrdersResponse{
		Orders: pageOrders,
		Pagination: entity.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
		},
	}
}

// Package analytics computes the dashboard summary as a pure function over
// the store's collections. It never errors: empty input yields zero counts
// and an empty product list.
package analytics

import (
	"math"
	"sort"

	"github.com/optivision/optivision/internal/model"
)

type ProductSales struct {
	Name       string  `json:"name"`
	Sales      float64 `json:"sales"`
	Percentage int     `json:"percentage"`
}

type Summary struct {
	TotalCustomers int            `json:"totalCustomers"`
	TotalOrders    int            `json:"totalOrders"`
	TotalRevenue   float64        `json:"totalRevenue"`
	PendingOrders  int            `json:"pendingOrders"`
	LowStockItems  int            `json:"lowStockItems"`
	TopProducts    []ProductSales `json:"topProducts"`
}

// Compute aggregates the collections into the dashboard figures.
//
// Revenue counts delivered orders only: money is recognized at delivery,
// not at booking. Pending counts orders still in the workshop pipeline
// (pending, confirmed, in-lab). Low stock is boundary-inclusive: an item
// sitting exactly at its reorder level is already low.
func Compute(customers []model.Customer, orders []model.Order, inventory []model.InventoryItem) Summary {
	sum := Summary{
		TotalCustomers: len(customers),
		TotalOrders:    len(orders),
		TopProducts:    []ProductSales{},
	}

	for _, o := range orders {
		if o.Status == model.OrderDelivered {
			sum.TotalRevenue += o.TotalAmount
		}
		if o.Status.Open() {
			sum.PendingOrders++
		}
	}

	for _, it := range inventory {
		if it.LowStock() {
			sum.LowStockItems++
		}
	}

	sum.TopProducts = topProducts(orders)
	return sum
}

// topProducts groups all orders (whatever their status) by the display key
// "frameDetails - lensType", ranks groups by summed totalAmount, and keeps
// the top five. Percentages are shares of the top-five sum, not of global
// revenue, so the displayed slices always add up to roughly 100.
func topProducts(orders []model.Order) []ProductSales {
	sales := make(map[string]float64)
	keys := make([]string, 0)
	for _, o := range orders {
		key := o.FrameDetails + " - " + o.LensType
		if _, seen := sales[key]; !seen {
			keys = append(keys, key)
		}
		sales[key] += o.TotalAmount
	}

	out := make([]ProductSales, 0, len(keys))
	for _, k := range keys {
		out = append(out, ProductSales{Name: k, Sales: sales[k]})
	}
	// Stable so equal-sales groups keep first-seen order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sales > out[j].Sales })
	if len(out) > 5 {
		out = out[:5]
	}

	var total float64
	for _, p := range out {
		total += p.Sales
	}
	if total > 0 {
		for i := range out {
			out[i].Percentage = int(math.Round(out[i].Sales / total * 100))
		}
	}
	return out
}

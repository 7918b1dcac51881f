// Package export turns the shop collections into CSV text with the exact
// column layout the front office expects.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/optivision/optivision/internal/model"
)

// FilePrefix is the product name stamped onto every export file.
const FilePrefix = "Opti-Vision"

// Table is an ordered header row plus one value row per record. Field
// order is fixed per entity type.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Filename builds "Opti-Vision-<Entity>-YYYY-MM-DD.csv".
func Filename(entity string, t time.Time) string {
	return fmt.Sprintf("%s-%s-%s.csv", FilePrefix, entity, t.Format("2006-01-02"))
}

// CSV serializes the table. ok is false when the table has no rows: an
// empty collection produces no file, which is a no-op, not an error.
func (t Table) CSV() (string, bool) {
	if len(t.Rows) == 0 {
		return "", false
	}
	var b strings.Builder
	writeLine(&b, t.Headers)
	for _, row := range t.Rows {
		b.WriteByte('\n')
		writeLine(&b, row)
	}
	return b.String(), true
}

// writeLine appends one comma-joined line. A field is quoted if and only
// if it contains a comma, a double-quote, or a newline; embedded quotes
// are doubled.
func writeLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if strings.ContainsAny(f, ",\"\n") {
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		} else {
			b.WriteString(f)
		}
	}
}

// DashboardCSV is the combined export: customer and order value rows in
// labelled sections, without per-section header rows since the two row
// shapes differ. ok is false when both collections are empty.
func DashboardCSV(customers []model.Customer, orders []model.Order) (string, bool) {
	if len(customers) == 0 && len(orders) == 0 {
		return "", false
	}
	var b strings.Builder
	b.WriteString("CUSTOMERS DATA\n\n")
	for _, row := range CustomersTable(customers).Rows {
		writeLine(&b, row)
		b.WriteByte('\n')
	}
	b.WriteString("\n\nORDERS DATA\n\n")
	for _, row := range OrdersTable(orders).Rows {
		writeLine(&b, row)
		b.WriteByte('\n')
	}
	return b.String(), true
}

func CustomersTable(customers []model.Customer) Table {
	t := Table{Headers: []string{
		"Customer ID", "Name", "Phone", "Email", "Gender", "Location",
		"Status", "Last Visit", "Total Orders",
		"Left Eye", "Right Eye", "PD", "Notes",
		"Created Date", "Last Updated",
	}}
	for _, c := range customers {
		pr := prescriptionCols(c.Prescription)
		t.Rows = append(t.Rows, []string{
			c.ID, c.Name, c.Phone, c.Email, c.Gender, c.Location,
			string(c.Status), c.LastVisit, strconv.Itoa(c.TotalOrders),
			pr[0], pr[1], pr[2], pr[3],
			dateOnly(c.CreatedAt), dateOnly(c.UpdatedAt),
		})
	}
	return t
}

func OrdersTable(orders []model.Order) Table {
	t := Table{Headers: []string{
		"Order ID", "Customer Name", "Customer Phone", "Status",
		"Order Date", "Expected Delivery", "Frame Details", "Lens Type",
		"Total Amount", "Advance Paid", "Balance Due",
		"Left Eye", "Right Eye", "PD", "Notes",
		"Created Date", "Last Updated",
	}}
	for _, o := range orders {
		pr := prescriptionCols(o.Prescription)
		t.Rows = append(t.Rows, []string{
			o.OrderID, o.CustomerName, o.CustomerPhone, string(o.Status),
			o.OrderDate, o.ExpectedDelivery, o.FrameDetails, o.LensType,
			rupees(o.TotalAmount), rupees(o.AdvancePaid), rupees(o.BalanceDue),
			pr[0], pr[1], pr[2], pr[3],
			dateOnly(o.CreatedAt), dateOnly(o.UpdatedAt),
		})
	}
	return t
}

func InventoryTable(items []model.InventoryItem) Table {
	t := Table{Headers: []string{
		"Item Code", "Brand", "Model", "Category", "Type", "Color", "Size",
		"Cost Price", "Selling Price", "Current Stock", "Reorder Level",
		"Supplier", "Last Restocked", "Created Date", "Last Updated",
	}}
	for _, it := range items {
		t.Rows = append(t.Rows, []string{
			it.ItemCode, it.Brand, it.Model, string(it.Category), it.Type,
			it.Color, it.Size,
			rupees(it.CostPrice), rupees(it.SellingPrice),
			strconv.Itoa(it.CurrentStock), strconv.Itoa(it.ReorderLevel),
			it.Supplier, it.LastRestocked,
			dateOnly(it.CreatedAt), dateOnly(it.UpdatedAt),
		})
	}
	return t
}

func prescriptionCols(p *model.Prescription) [4]string {
	if p == nil {
		return [4]string{}
	}
	return [4]string{p.LeftEye, p.RightEye, p.PD, p.Notes}
}

func rupees(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', -1, 64)
}

// dateOnly trims an RFC3339 timestamp to its date; anything that doesn't
// parse is passed through untouched.
func dateOnly(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("2006-01-02")
}

package model

// Prescription is the eye-measurement block shared by customers and orders.
type Prescription struct {
	LeftEye  string `json:"leftEye"`
	RightEye string `json:"rightEye"`
	PD       string `json:"pd"`
	Notes    string `json:"notes,omitempty"`
}

type Customer struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email,omitempty"`
	Gender         string         `json:"gender,omitempty"`
	Location       string         `json:"location"`
	LastVisit      string         `json:"lastVisit"`
	TotalOrders    int            `json:"totalOrders"`
	Status         CustomerStatus `json:"status"`
	ProfilePicture string         `json:"profilePicture,omitempty"`
	Prescription   *Prescription  `json:"prescription,omitempty"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
}

// Order keeps a denormalized snapshot of the customer's name and phone taken
// at creation time. CustomerID is a lookup key, not an owning reference.
type Order struct {
	ID               string        `json:"id"`
	OrderID          string        `json:"orderId"`
	CustomerID       string        `json:"customerId"`
	CustomerName     string        `json:"customerName"`
	CustomerPhone    string        `json:"customerPhone"`
	Status           OrderStatus   `json:"status"`
	OrderDate        string        `json:"orderDate"`
	ExpectedDelivery string        `json:"expectedDelivery"`
	FrameDetails     string        `json:"frameDetails"`
	LensType         string        `json:"lensType"`
	TotalAmount      float64       `json:"totalAmount"`
	AdvancePaid      float64       `json:"advancePaid"`
	BalanceDue       float64       `json:"balanceDue"`
	Prescription     *Prescription `json:"prescription,omitempty"`
	CreatedAt        string        `json:"createdAt"`
	UpdatedAt        string        `json:"updatedAt"`
}

type InventoryItem struct {
	ID            string   `json:"id"`
	ItemCode      string   `json:"itemCode"`
	Brand         string   `json:"brand"`
	Model         string   `json:"model"`
	Category      Category `json:"category"`
	Type          string   `json:"type"`
	Color         string   `json:"color,omitempty"`
	Size          string   `json:"size,omitempty"`
	CostPrice     float64  `json:"costPrice"`
	SellingPrice  float64  `json:"sellingPrice"`
	CurrentStock  int      `json:"currentStock"`
	ReorderLevel  int      `json:"reorderLevel"`
	Supplier      string   `json:"supplier"`
	LastRestocked string   `json:"lastRestocked"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// LowStock reports whether the item is at or below its reorder level.
func (i InventoryItem) LowStock() bool { return i.CurrentStock <= i.ReorderLevel }

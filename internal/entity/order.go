package entity

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// Valid reports whether s is a member of the status enum. Transitions between
// valid statuses are unconstrained.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID         int64    `json:"id"`
	UserID     int64    `json:"-"`
	ProductID  int64    `json:"-"`
	User       *User    `json:"user,omitempty"`
	Product    *Product `json:"product,omitempty"`
	Quantity   int      `json:"quantity"`
	TotalPrice float64  `json:"totalPrice"`
	Status     Status   `json:"status"`
}

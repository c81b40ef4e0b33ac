package domain

import "time"

const (
	// PaymentStatusPending payment has not been confirmed yet.
	PaymentStatusPending string = "pending"
	// PaymentStatusPaid payment confirmed by the checkout gateway.
	PaymentStatusPaid string = "paid"

	// FulfilmentUnpaid booking created, no payment received.
	FulfilmentUnpaid string = "unpaid"
	// FulfilmentPending paid, waiting for a decorator to be assigned.
	FulfilmentPending string = "Pending"
	// FulfilmentAssigned a decorator has been assigned.
	FulfilmentAssigned string = "Decorator Assigned"

	// DecoratorStatusPending application submitted.
	DecoratorStatusPending string = "pending"
	// DecoratorStatusApproved application approved, user gets the decorator role.
	DecoratorStatusApproved string = "approved"
)

type Booking struct {
	ID            string    `db:"id"`
	UserName      string    `db:"user_name"`
	UserEmail     string    `db:"user_email"`
	ServiceID     string    `db:"service_id"`
	ServiceName   string    `db:"service_name"`
	BookingDate   string    `db:"booking_date"`
	Location      string    `db:"location"`
	Price         float64   `db:"price"`
	Status        string    `db:"status"`
	BookingStatus string    `db:"booking_status"`
	AssignedTo    *string   `db:"assigned_to"`
	SessionID     *string   `db:"session_id"`
	CreatedAt     time.Time `db:"created_at"`
}

type Decorator struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Status    string    `db:"status"`
	Earnings  float64   `db:"earnings"`
	CreatedAt time.Time `db:"created_at"`
}

type Payment struct {
	ID            string    `db:"id"`
	Amount        float64   `db:"amount"`
	Currency      string    `db:"currency"`
	CustomerEmail string    `db:"customer_email"`
	ParcelID      string    `db:"parcel_id"`
	ParcelName    string    `db:"parcel_name"`
	TransactionID string    `db:"transaction_id"`
	PaymentStatus string    `db:"payment_status"`
	TrackingID    string    `db:"tracking_id"`
	PaidAt        time.Time `db:"paid_at"`
}

type User struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	PhotoURL    string    `db:"photo_url"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

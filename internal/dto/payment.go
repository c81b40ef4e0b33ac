package dto

import "time"

type CreateCheckoutSessionRequestDTO struct {
	ID          string  `json:"id" validate:"required"`
	Cost        float64 `json:"cost" validate:"required,gt=0"`
	ParcelName  string  `json:"parcelName" validate:"required"`
	ParcelID    string  `json:"parcelId"`
	SenderEmail string  `json:"senderEmail" validate:"required,email"`
}

type CreateCheckoutSessionResponseDTO struct {
	URL string `json:"url"`
}

type PaymentResponseDTO struct {
	ID            string    `json:"_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customerEmail"`
	ParcelID      string    `json:"parcelId"`
	ParcelName    string    `json:"parcelName"`
	TransactionID string    `json:"transactionId"`
	PaymentStatus string    `json:"paymentStatus"`
	TrackingID    string    `json:"trackingId"`
	PaidAt        time.Time `json:"paidAt"`
}

type ConfirmPaymentResponseDTO struct {
	Success       bool               `json:"success"`
	Modified      bool               `json:"modified"`
	TrackingID    string             `json:"trackingId"`
	TransactionID string             `json:"transactionId"`
	PaymentInfo   PaymentResponseDTO `json:"paymentInfo"`
}

package dto

import "time"

type DecoratorApplyRequestDTO struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type DecoratorResponseDTO struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	Earnings  float64   `json:"earnings"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateDecoratorStatusRequestDTO struct {
	Status string `json:"status" validate:"required"`
}

package dto

type CreateBookingRequestDTO struct {
	UserName    string  `json:"userName" validate:"required"`
	UserEmail   string  `json:"userEmail" validate:"required,email"`
	ServiceID   string  `json:"serviceId" validate:"required"`
	ServiceName string  `json:"serviceName"`
	BookingDate string  `json:"bookingDate" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Price       float64 `json:"price"`
}

type BookingResponseDTO struct {
	ID            string  `json:"_id"`
	UserName      string  `json:"userName"`
	UserEmail     string  `json:"userEmail"`
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName,omitempty"`
	BookingDate   string  `json:"bookingDate"`
	Location      string  `json:"location"`
	Price         float64 `json:"price"`
	Status        string  `json:"status"`
	BookingStatus string  `json:"bookingStatus"`
	AssignedTo    *string `json:"assignedTo"`
	SessionID     *string `json:"sessionId,omitempty"`
}

type AssignDecoratorRequestDTO struct {
	AssignedTo string `json:"assignedTo"`
}

type UpdateBookingStatusRequestDTO struct {
	BookingStatus string `json:"bookingStatus" validate:"required"`
}

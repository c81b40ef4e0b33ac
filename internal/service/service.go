package service

import (
	"github.com/sakibulla/AS-11-Server/internal/gateway/checkout"
	"github.com/sakibulla/AS-11-Server/internal/handlers/bookings"
	"github.com/sakibulla/AS-11-Server/internal/handlers/decorators"
	"github.com/sakibulla/AS-11-Server/internal/handlers/payments"
	"github.com/sakibulla/AS-11-Server/internal/repo"
	bookingservice "github.com/sakibulla/AS-11-Server/internal/service/bookingservice"
	decoratorservice "github.com/sakibulla/AS-11-Server/internal/service/decoratorservice"
	paymentservice "github.com/sakibulla/AS-11-Server/internal/service/paymentservice"
)

type Services struct {
	BookingService   bookings.Service
	PaymentService   payments.Service
	DecoratorService decorators.Service
}

func New(repo *repo.Repositories, gateway *checkout.Client, siteDomain string) *Services {
	bookingService := bookingservice.New(repo.BookingRepo, repo.DecoratorRepo)
	paymentService := paymentservice.New(repo.BookingRepo, repo.PaymentRepo, gateway, siteDomain)
	decoratorService := decoratorservice.New(repo.DecoratorRepo, repo.UserRepo)

	return &Services{
		BookingService:   bookingService,
		PaymentService:   paymentService,
		DecoratorService: decoratorService,
	}
}

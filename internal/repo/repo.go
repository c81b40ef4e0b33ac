package repo

import (
	"github.com/sakibulla/AS-11-Server/internal/pg"
	bookingrepo "github.com/sakibulla/AS-11-Server/internal/repo/booking-repo"
	decoratorrepo "github.com/sakibulla/AS-11-Server/internal/repo/decorator-repo"
	paymentrepo "github.com/sakibulla/AS-11-Server/internal/repo/payment-repo"
	userrepo "github.com/sakibulla/AS-11-Server/internal/repo/user-repo"
)

// Repositories are exposed as concrete types because the booking repo is
// shared by several services, each narrowing it to its own interface.
type Repositories struct {
	BookingRepo   *bookingrepo.Repository
	DecoratorRepo *decoratorrepo.Repository
	PaymentRepo   *paymentrepo.Repository
	UserRepo      *userrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		BookingRepo:   bookingrepo.New(conn, txManager),
		DecoratorRepo: decoratorrepo.New(conn),
		PaymentRepo:   paymentrepo.New(conn, txManager),
		UserRepo:      userrepo.New(conn),
	}
}

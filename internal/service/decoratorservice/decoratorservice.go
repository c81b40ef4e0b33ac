package decoratorservice

import (
	"context"
	"errors"

	"github.com/sakibulla/AS-11-Server/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=decoratorservice.go -destination=mocks.go -package=decoratorservice

type DecoratorRepo interface {
	Create(ctx context.Context, decorator *domain.Decorator) (*domain.Decorator, error)
	FindByID(ctx context.Context, id string) (*domain.Decorator, error)
	FindAll(ctx context.Context, status string) ([]domain.Decorator, error)
	UpdateStatus(ctx context.Context, id string, status string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type UserRepo interface {
	SetRoleByEmail(ctx context.Context, email string, role string) error
}

type Service struct {
	decoratorRepo DecoratorRepo
	userRepo      UserRepo
}

func New(decoratorRepo DecoratorRepo, userRepo UserRepo) *Service {
	return &Service{
		decoratorRepo: decoratorRepo,
		userRepo:      userRepo,
	}
}

var (
	ErrDecoratorNotFound = errors.New("decorator not found")
)

// RoleDecorator is assigned to the user once their application is approved.
const RoleDecorator = "decorator"

func (s *Service) Apply(ctx context.Context, name, email string) (*domain.Decorator, error) {
	decorator := &domain.Decorator{
		Name:     name,
		Email:    email,
		Status:   domain.DecoratorStatusPending,
		Earnings: 0,
	}

	created, err := s.decoratorRepo.Create(ctx, decorator)
	if err != nil {
		zap.L().Error("can't create decorator application", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetDecorators(ctx context.Context, status string) ([]domain.Decorator, error) {
	decorators, err := s.decoratorRepo.FindAll(ctx, status)
	if err != nil {
		zap.L().Error("failed to get decorators", zap.Error(err))
		return nil, err
	}
	return decorators, nil
}

func (s *Service) GetDecorator(ctx context.Context, id string) (*domain.Decorator, error) {
	decorator, err := s.decoratorRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get decorator", zap.Error(err))
		return nil, err
	}
	if decorator == nil {
		return nil, ErrDecoratorNotFound
	}
	return decorator, nil
}

// UpdateStatus transitions the application. Approval also flips the
// applicant's user role; the two writes are independent mutations with no
// cross-entity transaction.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) error {
	decorator, err := s.decoratorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if decorator == nil {
		return ErrDecoratorNotFound
	}

	if _, err := s.decoratorRepo.UpdateStatus(ctx, id, status); err != nil {
		zap.L().Error("failed to update decorator status", zap.Error(err))
		return err
	}

	if status == domain.DecoratorStatusApproved {
		if err := s.userRepo.SetRoleByEmail(ctx, decorator.Email, RoleDecorator); err != nil {
			zap.L().Error("decorator approved but user role not updated", zap.String("email", decorator.Email), zap.Error(err))
			return err
		}
	}

	return nil
}

func (s *Service) DeleteDecorator(ctx context.Context, id string) error {
	deleted, err := s.decoratorRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete decorator", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrDecoratorNotFound
	}
	return nil
}

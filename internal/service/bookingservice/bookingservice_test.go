package bookingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sakibulla/AS-11-Server/internal/domain"
)

const (
	testBookingID   = "0b564be7-60c4-4a35-9d11-8d0c3c2d4b01"
	testDecoratorID = "3a77f1de-9c02-4a5e-8f11-0c9d1b2a3c04"
	testGhostID     = "9e8d7c6b-5f31-4f1a-b222-6a1e0d4c5b72"
	testMissingID   = "f0e1d2c3-b4a5-4697-8809-1a2b3c4d5e6f"
)

func NewMock(t *testing.T) (*Service, *MockBookingRepo, *MockDecoratorRepo) {
	ctrl := gomock.NewController(t)
	bookingRepo := NewMockBookingRepo(ctrl)
	decoratorRepo := NewMockDecoratorRepo(ctrl)
	service := New(bookingRepo, decoratorRepo)
	defer ctrl.Finish()
	return service, bookingRepo, decoratorRepo
}

func strPtr(s string) *string { return &s }

func TestCreateBooking(t *testing.T) {
	service, bookingRepo, _ := NewMock(t)
	tests := []struct {
		name          string
		booking       *domain.Booking
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "New booking starts pending and unpaid",
			booking: &domain.Booking{UserName: "Alice", UserEmail: "alice@example.com", ServiceID: "svc1", Price: 120},
			prepareMock: func() {
				bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						assert.Equal(t, domain.PaymentStatusPending, b.Status)
						assert.Equal(t, domain.FulfilmentUnpaid, b.BookingStatus)
						b.ID = testBookingID
						return b, nil
					})
			},
			expectedError: nil,
		},
		{
			name:    "Repo failure propagates",
			booking: &domain.Booking{UserName: "Bob", UserEmail: "bob@example.com", ServiceID: "svc2"},
			prepareMock: func() {
				bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			expectedError: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			created, err := service.CreateBooking(context.Background(), tt.booking)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, created)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, created.ID)
		})
	}
}

func TestGetBookings_ReadDefaults(t *testing.T) {
	service, bookingRepo, _ := NewMock(t)

	bookingRepo.EXPECT().FindAll(gomock.Any(), "alice@example.com").Return([]domain.Booking{
		{ID: "old", Status: "", BookingStatus: ""},
		{ID: "new", Status: domain.PaymentStatusPaid, BookingStatus: domain.FulfilmentAssigned},
	}, nil)

	bookings, err := service.GetBookings(context.Background(), "alice@example.com")
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)

	assert.Equal(t, domain.PaymentStatusPending, bookings[0].Status)
	assert.Equal(t, domain.FulfilmentPending, bookings[0].BookingStatus)

	assert.Equal(t, domain.PaymentStatusPaid, bookings[1].Status)
	assert.Equal(t, domain.FulfilmentAssigned, bookings[1].BookingStatus)
}

func TestGetBooking(t *testing.T) {
	service, bookingRepo, _ := NewMock(t)
	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Found booking gets read defaults",
			id:   testBookingID,
			prepareMock: func() {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testBookingID).Return(&domain.Booking{ID: testBookingID}, nil)
			},
		},
		{
			name: "Missing booking",
			id:   testMissingID,
			prepareMock: func() {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testMissingID).Return(nil, nil)
			},
			expectedError: ErrBookingNotFound,
		},
		{
			// A malformed identifier never reaches the repository.
			name:          "Malformed identifier resolves to not found",
			id:            "abc",
			prepareMock:   func() {},
			expectedError: ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			booking, err := service.GetBooking(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.FulfilmentPending, booking.BookingStatus)
			assert.Equal(t, domain.PaymentStatusPending, booking.Status)
		})
	}
}

func TestGetBookingBySession(t *testing.T) {
	service, bookingRepo, _ := NewMock(t)

	bookingRepo.EXPECT().FindBySessionID(gomock.Any(), "cs_1").Return(&domain.Booking{
		ID:        testBookingID,
		SessionID: strPtr("cs_1"),
	}, nil)

	booking, err := service.GetBookingBySession(context.Background(), "cs_1")
	assert.NoError(t, err)
	assert.Equal(t, testBookingID, booking.ID)
	assert.Equal(t, domain.FulfilmentPending, booking.BookingStatus)

	bookingRepo.EXPECT().FindBySessionID(gomock.Any(), "cs_gone").Return(nil, nil)
	_, err = service.GetBookingBySession(context.Background(), "cs_gone")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDeleteBooking(t *testing.T) {
	service, bookingRepo, _ := NewMock(t)

	bookingRepo.EXPECT().Delete(gomock.Any(), testBookingID).Return(true, nil)
	assert.NoError(t, service.DeleteBooking(context.Background(), testBookingID))

	bookingRepo.EXPECT().Delete(gomock.Any(), testMissingID).Return(false, nil)
	assert.ErrorIs(t, service.DeleteBooking(context.Background(), testMissingID), ErrBookingNotFound)

	// Malformed identifier short-circuits before the repository.
	assert.ErrorIs(t, service.DeleteBooking(context.Background(), "abc"), ErrBookingNotFound)
}

func TestAssignDecorator(t *testing.T) {
	tests := []struct {
		name          string
		bookingID     string
		assignedTo    string
		prepareMock   func(bookingRepo *MockBookingRepo, decoratorRepo *MockDecoratorRepo)
		expectedMod   bool
		expectedError error
	}{
		{
			name:       "Assigning accrues earnings",
			bookingID:  testBookingID,
			assignedTo: testDecoratorID,
			prepareMock: func(bookingRepo *MockBookingRepo, decoratorRepo *MockDecoratorRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testBookingID).Return(&domain.Booking{ID: testBookingID, Price: 150}, nil)
				bookingRepo.EXPECT().UpdateAssignment(gomock.Any(), testBookingID, strPtr(testDecoratorID), domain.FulfilmentAssigned).Return(true, nil)
				decoratorRepo.EXPECT().FindByID(gomock.Any(), testDecoratorID).Return(&domain.Decorator{ID: testDecoratorID}, nil)
				decoratorRepo.EXPECT().AddEarnings(gomock.Any(), testDecoratorID, 150.0).Return(nil)
			},
			expectedMod: true,
		},
		{
			name:       "Sentinel clears assignment without accrual",
			bookingID:  testBookingID,
			assignedTo: UnassignedSentinel,
			prepareMock: func(bookingRepo *MockBookingRepo, decoratorRepo *MockDecoratorRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testBookingID).Return(&domain.Booking{ID: testBookingID, AssignedTo: strPtr(testDecoratorID)}, nil)
				bookingRepo.EXPECT().UpdateAssignment(gomock.Any(), testBookingID, nil, domain.FulfilmentPending).Return(true, nil)
			},
			expectedMod: true,
		},
		{
			name:       "Empty value clears assignment",
			bookingID:  testBookingID,
			assignedTo: "  ",
			prepareMock: func(bookingRepo *MockBookingRepo, decoratorRepo *MockDecoratorRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testBookingID).Return(&domain.Booking{ID: testBookingID}, nil)
				bookingRepo.EXPECT().UpdateAssignment(gomock.Any(), testBookingID, nil, domain.FulfilmentPending).Return(true, nil)
			},
			expectedMod: true,
		},
		{
			name:       "Missing decorator skips accrual but keeps assignment",
			bookingID:  testBookingID,
			assignedTo: testGhostID,
			prepareMock: func(bookingRepo *MockBookingRepo, decoratorRepo *MockDecoratorRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testBookingID).Return(&domain.Booking{ID: testBookingID, Price: 90}, nil)
				bookingRepo.EXPECT().UpdateAssignment(gomock.Any(), testBookingID, strPtr(testGhostID), domain.FulfilmentAssigned).Return(true, nil)
				decoratorRepo.EXPECT().FindByID(gomock.Any(), testGhostID).Return(nil, nil)
			},
			expectedMod: true,
		},
		{
			name:       "Accrual failure does not fail the assignment",
			bookingID:  testBookingID,
			assignedTo: testDecoratorID,
			prepareMock: func(bookingRepo *MockBookingRepo, decoratorRepo *MockDecoratorRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testBookingID).Return(&domain.Booking{ID: testBookingID, Price: 75}, nil)
				bookingRepo.EXPECT().UpdateAssignment(gomock.Any(), testBookingID, strPtr(testDecoratorID), domain.FulfilmentAssigned).Return(true, nil)
				decoratorRepo.EXPECT().FindByID(gomock.Any(), testDecoratorID).Return(&domain.Decorator{ID: testDecoratorID}, nil)
				decoratorRepo.EXPECT().AddEarnings(gomock.Any(), testDecoratorID, 75.0).Return(errors.New("db down"))
			},
			expectedMod: true,
		},
		{
			name:       "Missing booking",
			bookingID:  testMissingID,
			assignedTo: testDecoratorID,
			prepareMock: func(bookingRepo *MockBookingRepo, decoratorRepo *MockDecoratorRepo) {
				bookingRepo.EXPECT().FindByID(gomock.Any(), testMissingID).Return(nil, nil)
			},
			expectedError: ErrBookingNotFound,
		},
		{
			name:          "Malformed booking identifier resolves to not found",
			bookingID:     "abc",
			assignedTo:    testDecoratorID,
			prepareMock:   func(bookingRepo *MockBookingRepo, decoratorRepo *MockDecoratorRepo) {},
			expectedError: ErrBookingNotFound,
		},
		{
			name:          "Malformed decorator identifier is rejected",
			bookingID:     testBookingID,
			assignedTo:    "dec-not-a-uuid",
			prepareMock:   func(bookingRepo *MockBookingRepo, decoratorRepo *MockDecoratorRepo) {},
			expectedError: ErrInvalidAssignee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, bookingRepo, decoratorRepo := NewMock(t)
			tt.prepareMock(bookingRepo, decoratorRepo)

			modified, err := service.AssignDecorator(context.Background(), tt.bookingID, tt.assignedTo)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMod, modified)
		})
	}
}

func TestGetBookingsByDecorator_MalformedID(t *testing.T) {
	service, _, _ := NewMock(t)

	bookings, err := service.GetBookingsByDecorator(context.Background(), "abc")
	assert.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestUpdateBookingStatus(t *testing.T) {
	service, bookingRepo, _ := NewMock(t)

	bookingRepo.EXPECT().UpdateBookingStatus(gomock.Any(), testBookingID, "Completed").Return(true, nil)
	modified, err := service.UpdateBookingStatus(context.Background(), testBookingID, "Completed")
	assert.NoError(t, err)
	assert.True(t, modified)

	bookingRepo.EXPECT().UpdateBookingStatus(gomock.Any(), testBookingID, "Completed").Return(false, nil)
	modified, err = service.UpdateBookingStatus(context.Background(), testBookingID, "Completed")
	assert.NoError(t, err)
	assert.False(t, modified)

	// Malformed identifier matches nothing and touches nothing.
	modified, err = service.UpdateBookingStatus(context.Background(), "abc", "Completed")
	assert.NoError(t, err)
	assert.False(t, modified)
}

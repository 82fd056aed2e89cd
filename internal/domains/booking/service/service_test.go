package service_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"palmera/config"
	kafkaMocks "palmera/infras/kafka/mocks"
	"palmera/infras/otel/mocks"
	"palmera/infras/paygate"
	paygateMocks "palmera/infras/paygate/mocks"
	auditMocks "palmera/internal/domains/audit/mocks"
	bookingMocks "palmera/internal/domains/booking/mocks"
	"palmera/internal/domains/booking/model"
	"palmera/internal/domains/booking/model/dto"
	"palmera/internal/domains/booking/service"
	notificationMocks "palmera/internal/domains/notification/mocks"
	roomTypeMocks "palmera/internal/domains/roomtype/mocks"
	cacheMocks "palmera/shared/cache/mocks"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"
	gModel "palmera/shared/model"
	"palmera/shared/timezone"
)

type bookingMockSet struct {
	repo         *bookingMocks.MockBooking
	roomTypeRepo *roomTypeMocks.MockRoomType
	auditRepo    *auditMocks.MockAudit
	dispatcher   *notificationMocks.MockDispatcher
	gateway      *paygateMocks.MockGateway
	publisher    *kafkaMocks.MockPublisher
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	set := bookingMockSet{
		repo:         bookingMocks.NewMockBooking(ctrl),
		roomTypeRepo: roomTypeMocks.NewMockRoomType(ctrl),
		auditRepo:    auditMocks.NewMockAudit(ctrl),
		dispatcher:   notificationMocks.NewMockDispatcher(ctrl),
		gateway:      paygateMocks.NewMockGateway(ctrl),
		publisher:    kafkaMocks.NewMockPublisher(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.BookingTopic = "palmera.bookings"

	svc := service.New(
		set.repo,
		set.roomTypeRepo,
		set.auditRepo,
		set.dispatcher,
		set.gateway,
		set.publisher,
		cfg,
		set.cache,
		mocks.NewOtel(),
	)

	return svc, set
}

// expectAfterWrite covers the fire-and-forget side effects of a
// successful write; none of them are deterministic by the time the
// assertion runs.
func expectAfterWrite(set bookingMockSet) {
	set.dispatcher.EXPECT().NotifyGuestConfirmation(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.dispatcher.EXPECT().NotifyStaffAlert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func activeBooking(id, email, checkIn, checkOut string) model.Booking {
	in, _ := timezone.Parse(constant.DateOnlyFormat, checkIn)
	out, _ := timezone.Parse(constant.DateOnlyFormat, checkOut)

	return model.Booking{
		ID:         id,
		Reference:  "BKTEST" + id,
		RoomTypeID: "room-type-id",
		GuestName:  "Test Guest",
		GuestEmail: email,
		CheckIn:    in,
		CheckOut:   out,
		Adults:     2,
		TotalPrice: 450,
		Status:     model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	validReq := dto.CreateBookingRequest{
		RoomTypeID: "room-type-id",
		GuestName:  "Test Guest",
		GuestEmail: "guest@example.com",
		CheckIn:    "2026-09-10",
		CheckOut:   "2026-09-14",
		Adults:     2,
		TotalPrice: 450,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				set.roomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), "guest@example.com", "room-type-id", gomock.Any(), gomock.Any()).
					Return(nil, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				expectAfterWrite(set)
			},
			wantErr: false,
		},
		{
			name: "room type not found",
			req:  validReq,
			setupMock: func() {
				set.roomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "overlapping booking rejected",
			req:  validReq,
			setupMock: func() {
				set.roomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{activeBooking("existing-id", "guest@example.com", "2026-09-12", "2026-09-16")}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "exclusion constraint maps to conflict",
			req:  validReq,
			setupMock: func() {
				set.roomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation)})

				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{activeBooking("racing-id", "guest@example.com", "2026-09-10", "2026-09-14")}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "check_out not after check_in",
			req: dto.CreateBookingRequest{
				RoomTypeID: "room-type-id",
				GuestName:  "Test Guest",
				GuestEmail: "guest@example.com",
				CheckIn:    "2026-09-14",
				CheckOut:   "2026-09-14",
				Adults:     2,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				set.roomTypeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				set.repo.EXPECT().
					FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Contains(t, res.Reference, "BK")
			}
		})
	}
}

func TestBookingService_CreateBackToBackAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	// The repository only reports true overlaps, so a stay starting on the
	// previous stay's check-out day never comes back as a conflict.
	set.roomTypeRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	set.repo.EXPECT().
		FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	set.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	expectAfterWrite(set)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	_, err := svc.Create(ctx, dto.CreateBookingRequest{
		RoomTypeID: "room-type-id",
		GuestName:  "Test Guest",
		GuestEmail: "guest@example.com",
		CheckIn:    "2026-09-14",
		CheckOut:   "2026-09-18",
		Adults:     1,
	})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			id:   "test-id",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking("test-id", "guest@example.com", "2026-09-10", "2026-09-14"), nil)

				set.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "missing-id",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, res.ID)
				assert.Equal(t, "2026-09-10", res.CheckIn)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	set.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	set.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	set.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{activeBooking("test-id", "guest@example.com", "2026-09-10", "2026-09-14")}, nil)

	set.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking("test-id", "guest@example.com", "2026-09-10", "2026-09-14"), nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				expectAfterWrite(set)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-id")
			err := svc.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: model.StatusConfirmed}, "test-id")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_BulkUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	set.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeBooking("first-id", "guest@example.com", "2026-09-10", "2026-09-14"), nil)

	set.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	set.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	expectAfterWrite(set)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-id")
	res, err := svc.BulkUpdateStatus(ctx, dto.BulkStatusRequest{
		IDs:    []string{"first-id", "missing-id"},
		Status: model.StatusCancelled,
	})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Failed)
	assert.Len(t, res.Results, 2)
	assert.True(t, res.Results[0].Updated)
	assert.Equal(t, "booking not found", res.Results[1].Error)
}

func TestBookingService_CancelOwn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	cancelled := activeBooking("cancelled-id", "guest@example.com", "2026-09-10", "2026-09-14")
	cancelled.Status = model.StatusCancelled

	tests := []struct {
		name      string
		email     string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:  "guest cancels own booking",
			email: "guest@example.com",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking("test-id", "guest@example.com", "2026-09-10", "2026-09-14"), nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				expectAfterWrite(set)
			},
			wantErr: false,
		},
		{
			name:  "guest email comparison is case-insensitive",
			email: "Guest@Example.COM",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking("test-id", "guest@example.com", "2026-09-10", "2026-09-14"), nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				expectAfterWrite(set)
			},
			wantErr: false,
		},
		{
			name:  "someone else's booking is forbidden",
			email: "other@example.com",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking("test-id", "guest@example.com", "2026-09-10", "2026-09-14"), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:  "already cancelled is a no-op",
			email: "guest@example.com",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id")
			ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, tt.email)

			err := svc.CancelOwn(ctx, "test-id")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_FindDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	set.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{
			activeBooking("first-id", "guest@example.com", "2026-09-10", "2026-09-14"),
			activeBooking("second-id", "Guest@Example.com", "2026-09-10", "2026-09-14"),
			activeBooking("third-id", "other@example.com", "2026-09-10", "2026-09-14"),
		}, nil)

	res, err := svc.FindDuplicates(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Clusters, 1)
	assert.Len(t, res.Clusters[0].Bookings, 2)
	assert.Equal(t, "2026-09-10", res.Clusters[0].CheckIn)
	assert.Equal(t, "2026-09-14", res.Clusters[0].CheckOut)
}

func TestBookingService_ReconcilePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	pendingBooking := activeBooking("test-id", "guest@example.com", "2026-09-10", "2026-09-14")
	pendingBooking.PaymentSessionID = sql.NullString{String: "cs_test_session", Valid: true}
	pendingBooking.PaymentStatus = sql.NullString{String: model.PaymentStatusPending, Valid: true}

	confirmedBooking := pendingBooking
	confirmedBooking.Status = model.StatusConfirmed
	confirmedBooking.PaymentStatus = sql.NullString{String: model.PaymentStatusPaid, Valid: true}

	tests := []struct {
		name          string
		setupMock     func()
		wantErr       bool
		wantCode      int
		wantConfirmed bool
		wantStatus    string
	}{
		{
			name: "paid session confirms the booking",
			setupMock: func() {
				set.gateway.EXPECT().
					VerifySession(gomock.Any(), "cs_test_session").
					Return(paygate.SessionStatus{SessionID: "cs_test_session", RawStatus: "paid", Paid: true}, nil)

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				expectAfterWrite(set)
			},
			wantConfirmed: true,
			wantStatus:    "paid",
		},
		{
			name: "unpaid session leaves the booking alone",
			setupMock: func() {
				set.gateway.EXPECT().
					VerifySession(gomock.Any(), "cs_test_session").
					Return(paygate.SessionStatus{SessionID: "cs_test_session", RawStatus: "unpaid"}, nil)

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)
			},
			wantConfirmed: false,
			wantStatus:    "unpaid",
		},
		{
			name: "already confirmed booking is idempotent",
			setupMock: func() {
				set.gateway.EXPECT().
					VerifySession(gomock.Any(), "cs_test_session").
					Return(paygate.SessionStatus{SessionID: "cs_test_session", RawStatus: "paid", Paid: true}, nil)

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)
			},
			wantConfirmed: true,
			wantStatus:    "paid",
		},
		{
			name: "gateway failure surfaces as upstream error",
			setupMock: func() {
				set.gateway.EXPECT().
					VerifySession(gomock.Any(), "cs_test_session").
					Return(paygate.SessionStatus{}, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
		{
			name: "unknown session has no booking",
			setupMock: func() {
				set.gateway.EXPECT().
					VerifySession(gomock.Any(), "cs_test_session").
					Return(paygate.SessionStatus{SessionID: "cs_test_session", RawStatus: "paid", Paid: true}, nil)

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ReconcilePayment(context.Background(), dto.ReconcilePaymentRequest{SessionID: "cs_test_session"})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantConfirmed, res.BookingConfirmed)
				assert.Equal(t, tt.wantStatus, res.Status)
			}
		})
	}
}

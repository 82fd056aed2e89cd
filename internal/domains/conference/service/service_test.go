package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"palmera/config"
	kafkaMocks "palmera/infras/kafka/mocks"
	"palmera/infras/otel/mocks"
	auditMocks "palmera/internal/domains/audit/mocks"
	conferenceMocks "palmera/internal/domains/conference/mocks"
	"palmera/internal/domains/conference/model"
	"palmera/internal/domains/conference/model/dto"
	"palmera/internal/domains/conference/service"
	cacheMocks "palmera/shared/cache/mocks"
	"palmera/shared/constant"
	"palmera/shared/failure"
	"palmera/shared/timezone"
)

func newConferenceService(ctrl *gomock.Controller) (service.Conference, *conferenceMocks.MockConference, *cacheMocks.MockRedisCache, *auditMocks.MockAudit, *kafkaMocks.MockPublisher) {
	mockRepo := conferenceMocks.NewMockConference(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockAudit := auditMocks.NewMockAudit(ctrl)
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.BookingTopic = "palmera.bookings"

	svc := service.New(mockRepo, mockAudit, mockPublisher, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache, mockAudit, mockPublisher
}

func reservation(id string) model.ConferenceBooking {
	eventDate, _ := timezone.Parse(constant.DateOnlyFormat, "2026-10-05")

	return model.ConferenceBooking{
		ID:           id,
		Reference:    "CFTEST" + id,
		ContactName:  "Test Contact",
		ContactEmail: "contact@example.com",
		EventDate:    eventDate,
		StartTime:    "09:00",
		EndTime:      "12:00",
		Attendees:    40,
		Status:       model.StatusPending,
	}
}

func TestConferenceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, mockAudit, mockPublisher := newConferenceService(ctrl)

	validReq := dto.CreateConferenceBookingRequest{
		ContactName:  "Test Contact",
		ContactEmail: "contact@example.com",
		EventDate:    "2026-10-05",
		StartTime:    "13:00",
		EndTime:      "17:00",
		Attendees:    40,
	}

	tests := []struct {
		name      string
		req       dto.CreateConferenceBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					FindOverlapping(gomock.Any(), gomock.Any(), "13:00", "17:00").
					Return(nil, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockAudit.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "window already reserved",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.ConferenceBooking{reservation("existing-id")}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "end_time not after start_time",
			req: dto.CreateConferenceBookingRequest{
				ContactName:  "Test Contact",
				ContactEmail: "contact@example.com",
				EventDate:    "2026-10-05",
				StartTime:    "13:00",
				EndTime:      "13:00",
				Attendees:    40,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
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
				assert.Contains(t, res.Reference, "CF")
			}
		})
	}
}

func TestConferenceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, _, _ := newConferenceService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation("test-id"), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.ConferenceBooking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "test-id")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "2026-10-05", res.EventDate)
				assert.Equal(t, "09:00", res.StartTime)
			}
		})
	}
}

func TestConferenceService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, mockAudit, mockPublisher := newConferenceService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation("test-id"), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockAudit.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.ConferenceBooking{}, nil)
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

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
	"palmera/infras/otel/mocks"
	s3Mocks "palmera/infras/s3/mocks"
	roomTypeMocks "palmera/internal/domains/roomtype/mocks"
	"palmera/internal/domains/roomtype/model"
	"palmera/internal/domains/roomtype/model/dto"
	"palmera/internal/domains/roomtype/service"
	cacheMocks "palmera/shared/cache/mocks"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"
)

func newRoomTypeService(ctrl *gomock.Controller) (service.RoomType, *roomTypeMocks.MockRoomType, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	mockRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3)

	return svc, mockRepo, mockCache, mockS3
}

func TestRoomTypeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, _ := newRoomTypeService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateRoomTypeRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation without image",
			req: dto.CreateRoomTypeRequest{
				Name:         "Deluxe Suite",
				Description:  "A big room",
				BasePrice:    250,
				MaxOccupancy: 3,
				Amenities:    []string{"wifi"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateRoomTypeRequest{
				Name:         "Deluxe Suite",
				BasePrice:    250,
				MaxOccupancy: 3,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomTypeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, _ := newRoomTypeService(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.RoomType{{ID: "test-id", Name: "Deluxe Suite", Slug: "deluxe-suite"}}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.RoomTypes, 1)
	assert.Equal(t, "deluxe-suite", res.RoomTypes[0].Slug)
}

func TestRoomTypeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, _ := newRoomTypeService(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.RoomType{}, nil)

	_, err := svc.Get(context.Background(), "missing-id")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"palmera/config"
	"palmera/infras/otel/mocks"
	profileMocks "palmera/internal/domains/profile/mocks"
	"palmera/internal/domains/profile/model"
	"palmera/internal/domains/profile/model/dto"
	"palmera/internal/domains/profile/service"
	"palmera/shared/constant"
	"palmera/shared/failure"
)

func newProfileService(ctrl *gomock.Controller) (service.Profile, *profileMocks.MockProfile) {
	mockRepo := profileMocks.NewMockProfile(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	return svc, mockRepo
}

func authedContext(userID, email string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserEmail, email)
}

func TestProfileService_UpsertOwn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newProfileService(ctrl)

	req := dto.UpsertProfileRequest{
		FullName: "Test Guest",
		Phone:    "+628112345678",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "first save inserts",
			ctx:  authedContext("user-id", "guest@example.com"),
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "later save updates",
			ctx:  authedContext("user-id", "guest@example.com"),
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "missing identity is unauthorized",
			ctx:       context.Background(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "repository error",
			ctx:  authedContext("user-id", "guest@example.com"),
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.UpsertOwn(tt.ctx, req)

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

func TestProfileService_GetOwn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newProfileService(ctrl)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Profile{ID: "user-id", FullName: "Test Guest", Email: "guest@example.com"}, nil)

	res, err := svc.GetOwn(authedContext("user-id", "guest@example.com"))

	assert.NoError(t, err)
	assert.Equal(t, "user-id", res.ID)

	_, err = svc.GetOwn(context.Background())

	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestProfileService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newProfileService(ctrl)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := svc.Delete(context.Background(), "missing-id")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

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
	menuMocks "palmera/internal/domains/menu/mocks"
	"palmera/internal/domains/menu/model"
	"palmera/internal/domains/menu/model/dto"
	"palmera/internal/domains/menu/service"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"
)

func newMenuService(ctrl *gomock.Controller) (service.Menu, *menuMocks.MockMenu) {
	mockRepo := menuMocks.NewMockMenu(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	return svc, mockRepo
}

func TestMenuService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newMenuService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
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
			err := svc.Create(ctx, dto.CreateMenuItemRequest{
				Name:     "Nasi Goreng",
				Price:    12.5,
				Category: "main",
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMenuService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newMenuService(ctrl)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.MenuItem{
			{ID: "first-id", Name: "Nasi Goreng", Category: "main", Available: true},
			{ID: "second-id", Name: "Es Teh", Category: "drink", Available: true},
		}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.MenuItems, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestMenuService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newMenuService(ctrl)

	t.Run("empty request rejected", func(t *testing.T) {
		err := svc.Update(context.Background(), dto.UpdateMenuItemRequest{}, "test-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing item", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateMenuItemRequest{Name: "Mie Goreng"}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(context.Background(), dto.UpdateMenuItemRequest{Name: "Mie Goreng"}, "test-id")

		assert.NoError(t, err)
	})
}

func TestMenuService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newMenuService(ctrl)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	err := svc.Delete(context.Background(), "test-id")

	assert.NoError(t, err)
}

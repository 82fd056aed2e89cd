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
	testimonialMocks "palmera/internal/domains/testimonial/mocks"
	"palmera/internal/domains/testimonial/model"
	"palmera/internal/domains/testimonial/model/dto"
	"palmera/internal/domains/testimonial/service"
	"palmera/shared/constant"
	gDto "palmera/shared/dto"
	"palmera/shared/failure"
)

func newTestimonialService(ctrl *gomock.Controller) (service.Testimonial, *testimonialMocks.MockTestimonial) {
	mockRepo := testimonialMocks.NewMockTestimonial(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	return svc, mockRepo
}

func TestTestimonialService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestimonialService(ctrl)

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

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "guest-id")
			err := svc.Create(ctx, dto.CreateTestimonialRequest{
				GuestName: "Test Guest",
				Quote:     "Wonderful stay.",
				Rating:    5,
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTestimonialService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestimonialService(ctrl)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Testimonial{{ID: "test-id", GuestName: "Test Guest", Rating: 5, Published: true}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Testimonials, 1)
	assert.Equal(t, 5, res.Testimonials[0].Rating)
}

func TestTestimonialService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestimonialService(ctrl)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Testimonial{}, nil)

	_, err := svc.Get(context.Background(), "missing-id")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestTestimonialService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestimonialService(ctrl)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	err := svc.Update(context.Background(), dto.UpdateTestimonialRequest{Quote: "Even better the second time."}, "test-id")

	assert.NoError(t, err)
}

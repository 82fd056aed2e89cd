package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"palmera/config"
	mailerMocks "palmera/infras/mailer/mocks"
	"palmera/infras/otel/mocks"
	"palmera/internal/domains/booking/model"
	"palmera/internal/domains/notification"
)

func TestDispatcher_NotifyGuestConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mailerMocks.NewMockMailer(ctrl)

	cfg := &config.Config{}
	cfg.App.Name = "Palmera"

	dispatcher := notification.New(mockMailer, cfg, mocks.NewOtel())

	booking := model.Booking{
		Reference:  "BKTEST",
		GuestName:  "Test Guest",
		GuestEmail: "guest@example.com",
		Adults:     2,
		Status:     model.StatusPending,
	}

	mockMailer.EXPECT().
		Send(gomock.Any(), "guest@example.com", gomock.Any(), gomock.Any()).
		Return(nil)

	err := dispatcher.NotifyGuestConfirmation(context.Background(), booking)
	assert.NoError(t, err)

	mockMailer.EXPECT().
		Send(gomock.Any(), "guest@example.com", gomock.Any(), gomock.Any()).
		Return(errors.New("smtp timeout"))

	err = dispatcher.NotifyGuestConfirmation(context.Background(), booking)
	assert.Error(t, err)
}

func TestDispatcher_NotifyStaffAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mailerMocks.NewMockMailer(ctrl)

	booking := model.Booking{
		Reference:  "BKTEST",
		GuestName:  "Test Guest",
		GuestEmail: "guest@example.com",
		Status:     model.StatusPending,
	}

	t.Run("no staff email configured is a no-op", func(t *testing.T) {
		cfg := &config.Config{}
		dispatcher := notification.New(mockMailer, cfg, mocks.NewOtel())

		err := dispatcher.NotifyStaffAlert(context.Background(), booking)
		assert.NoError(t, err)
	})

	t.Run("alert goes to the configured address", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.SMTP.StaffEmail = "frontdesk@example.com"

		dispatcher := notification.New(mockMailer, cfg, mocks.NewOtel())

		mockMailer.EXPECT().
			Send(gomock.Any(), "frontdesk@example.com", gomock.Any(), gomock.Any()).
			Return(nil)

		err := dispatcher.NotifyStaffAlert(context.Background(), booking)
		assert.NoError(t, err)
	})
}

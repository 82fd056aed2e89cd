package notification

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=./mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"fmt"
	"palmera/config"
	"palmera/infras/mailer"
	"palmera/infras/otel"
	"palmera/internal/domains/booking/model"
	"palmera/shared/constant"
)

// Dispatcher sends the booking emails. Both calls are at-most-once: a
// delivery failure is the caller's to log, never to retry or roll back.
type Dispatcher interface {
	NotifyGuestConfirmation(ctx context.Context, booking model.Booking) error
	NotifyStaffAlert(ctx context.Context, booking model.Booking) error
}

type dispatcherImpl struct {
	mailer mailer.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(mailer mailer.Mailer, cfg *config.Config, otl otel.Otel) Dispatcher {
	return &dispatcherImpl{
		mailer: mailer,
		cfg:    cfg,
		otel:   otl,
	}
}

func (d *dispatcherImpl) NotifyGuestConfirmation(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".notification.NotifyGuestConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	subject := fmt.Sprintf("Your booking %s at %s", booking.Reference, d.cfg.App.Name)

	body := fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Thank you for booking with us. Your booking reference is <strong>%s</strong>.</p>
<p>Check-in: %s<br>Check-out: %s<br>Guests: %d adult(s), %d child(ren)<br>Total: %.2f</p>
<p>Current status: %s.</p>`,
		booking.GuestName,
		booking.Reference,
		booking.CheckIn.Format(constant.DateOnlyFormat),
		booking.CheckOut.Format(constant.DateOnlyFormat),
		booking.Adults,
		booking.Children,
		booking.TotalPrice,
		booking.Status,
	)

	return d.mailer.Send(ctx, booking.GuestEmail, subject, body)
}

func (d *dispatcherImpl) NotifyStaffAlert(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".notification.NotifyStaffAlert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if d.cfg.SMTP.StaffEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("New booking %s (%s)", booking.Reference, booking.Status)

	body := fmt.Sprintf(
		`<p>New booking received.</p>
<p>Reference: %s<br>Guest: %s &lt;%s&gt;<br>Room type: %s<br>Stay: %s to %s<br>Total: %.2f<br>Status: %s</p>`,
		booking.Reference,
		booking.GuestName,
		booking.GuestEmail,
		booking.RoomTypeID,
		booking.CheckIn.Format(constant.DateOnlyFormat),
		booking.CheckOut.Format(constant.DateOnlyFormat),
		booking.TotalPrice,
		booking.Status,
	)

	return d.mailer.Send(ctx, d.cfg.SMTP.StaffEmail, subject, body)
}

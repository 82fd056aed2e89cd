package payment

import (
	"net/http"
	"palmera/infras/otel"
	"palmera/internal/domains/booking/model/dto"
	"palmera/internal/domains/booking/service"
	"palmera/shared/constant"
	"palmera/shared/validator"
	"palmera/transport/http/middleware"
	"palmera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/verify", handler.VerifyPayment)
	})
}

// VerifyPayment reconciles an external checkout session with its booking.
// @Summary Verify a checkout session
// @Description Re-read the checkout session from the payment processor and confirm the matching booking when paid. Safe to call repeatedly.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.ReconcilePaymentRequest true "Reconcile Payment Request"
// @Success 200 {object} response.Data[dto.ReconcilePaymentResponse] "Session status and booking outcome"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error "Payment processor unavailable"
// @Failure 500 {object} response.Error
// @Router /v1/payments/verify [post]
func (handler *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPayment")
	defer scope.End()

	req := dto.ReconcilePaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ReconcilePayment(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reconcile payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Checkout session reconciled: " + res.Status)

	response.WithJSON(w, http.StatusOK, res)
}

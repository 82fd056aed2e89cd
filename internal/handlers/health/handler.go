package health

import (
	"net/http"
	"palmera/infras/postgres"
	"palmera/shared/cache"
	"palmera/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	db    *postgres.Connection
	cache cache.RedisCache
}

func New(db *postgres.Connection, cache cache.RedisCache) Handler {
	return Handler{
		db:    db,
		cache: cache,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the store behind the service is reachable.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "OK"
// @Failure 503 {object} response.Error
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := handler.db.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed: database unreachable")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "ok")
}

package components

import (
	"deskbook/internal/handler"
	"deskbook/internal/handler/api"
	"deskbook/internal/handler/middleware"
	"deskbook/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewSeatHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(client *redis.Client, cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(client, cfg.RateLimit)
}

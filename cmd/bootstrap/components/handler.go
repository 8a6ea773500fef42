package components

import (
	"card-tracker/internal/handler"
	"card-tracker/internal/handler/api"
	"card-tracker/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCardHandler,
		api.NewCardRequestHandler,
		api.NewSubmissionHandler,
		api.NewCouponHandler,
		api.NewEventHandler,
		api.NewStatusHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	card *api.CardHandler,
	cardRequest *api.CardRequestHandler,
	submission *api.SubmissionHandler,
	coupon *api.CouponHandler,
	event *api.EventHandler,
	status *api.StatusHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Card:        card,
		CardRequest: cardRequest,
		Submission:  submission,
		Coupon:      coupon,
		Event:       event,
		Status:      status,
	}
}

package interfaces

import (
	"context"

	"autofixpro/internal/domain/entities"
)

// INotificationDispatcher sends status messages to a customer over the
// configured channels (email, SMS).
//
// Contract: best-effort, non-blocking, no retry. Implementations dispatch
// asynchronously and isolate channel failures; callers never see a delivery
// error and must not wait on delivery.

type INotificationDispatcher interface {
	NotifyIntake(ctx context.Context, order entities.ServiceOrder, vehicle entities.Vehicle)
	NotifyStateChange(ctx context.Context, order entities.ServiceOrder, vehicle entities.Vehicle, previous entities.OrderState)
	NotifyCompletion(ctx context.Context, order entities.ServiceOrder, vehicle entities.Vehicle)
}

// IRealtimePublisher pushes live UI events to connected clients. Delivery is
// best-effort pub/sub: no acknowledgment, no persistence of missed events.

type IRealtimePublisher interface {
	NotifyUser(username string, event entities.NotificationEvent)
	NotifyBroadcast(event entities.NotificationEvent)
	NotifyOrderCreated(order entities.ServiceOrder, vehicle entities.Vehicle)
	NotifyStateChange(order entities.ServiceOrder, vehicle entities.Vehicle, previous entities.OrderState)
	NotifyCompletion(order entities.ServiceOrder, vehicle entities.Vehicle)
}

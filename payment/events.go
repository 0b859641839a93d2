package payment

import (
	"context"

	"encore.dev/pubsub"

	"encore.app/payment/model"
)

// PaymentFailures carries handled payment failures to the alerting and
// notification consumers.
var PaymentFailures = pubsub.NewTopic[*model.PaymentFailureEvent]("payment-failure", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

// RetryExhausted carries terminal retry failures that need manual operator
// action.
var RetryExhausted = pubsub.NewTopic[*model.RetryExhaustedEvent]("retry-exhausted", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

// PaymentNotifications carries verified provider callbacks to the order
// processing pipeline.
var PaymentNotifications = pubsub.NewTopic[*model.PaymentNotifyEvent]("payment-notification", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

// topicPublisher is the production event publisher; business packages only
// see the interfaces they need.
type topicPublisher struct{}

func (topicPublisher) PublishPaymentFailure(ctx context.Context, event *model.PaymentFailureEvent) error {
	_, err := PaymentFailures.Publish(ctx, event)
	return err
}

func (topicPublisher) PublishRetryExhausted(ctx context.Context, event *model.RetryExhaustedEvent) error {
	_, err := RetryExhausted.Publish(ctx, event)
	return err
}

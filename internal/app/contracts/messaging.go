package contracts

import "context"

type QueuePublisher interface {
	Publish(ctx context.Context, queueName string, body []byte) error
}

package messaging

import (
	"context"

	"neuronutrition-service/internal/app/contracts"
	"neuronutrition-service/internal/pkg/constvars"
	"neuronutrition-service/internal/pkg/exceptions"

	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	Channel *amqp091.Channel
}

func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, queueNames ...string) (contracts.QueuePublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	for _, queueName := range queueNames {
		if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
			return nil, err
		}
	}

	return &rabbitMQPublisher{Channel: channel}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, queueName string, body []byte) error {
	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err := p.Channel.PublishWithContext(ctx, "", queueName, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	return nil
}

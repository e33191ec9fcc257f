package helpers

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// PublishEvent marshals payload and publishes it on topic with the given
// correlation id as both message UUID and metadata.
func PublishEvent(publisher message.Publisher, topic string, correlationID string, payload interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := message.NewMessage(correlationID, payloadBytes)
	msg.Metadata.Set(middleware.CorrelationIDMetadataKey, correlationID)

	return publisher.Publish(topic, msg)
}

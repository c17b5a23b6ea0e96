package contracts

// AmqpMessage is the message structure for AMQP.
type AmqpMessage struct {
	ExecutionID string `json:"executionId"`
	Data        []byte `json:"data"`
}

// Routing keys
const (
	EventIntentExecuted = "intent.executed"
)

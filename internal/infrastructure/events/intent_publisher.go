package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hilthontt/sovereign/internal/domain"
	"github.com/hilthontt/sovereign/internal/infrastructure/contracts"
)

type IntentPublisher interface {
	PublishIntentExecuted(ctx context.Context, report domain.Report) error
}

type MessagePublisher interface {
	PublishMessage(ctx context.Context, routingKey string, message contracts.AmqpMessage) error
}

type IntentExecutedData struct {
	ExecutionID  string    `json:"executionId"`
	Intent       string    `json:"intent"`
	Researched   bool      `json:"researched"`
	Secured      bool      `json:"secured"`
	SystemHealth string    `json:"systemHealth"`
	CompletedAt  time.Time `json:"completedAt"`
}

type amqpIntentPublisher struct {
	publisher MessagePublisher
}

func NewIntentPublisher(publisher MessagePublisher) IntentPublisher {
	return &amqpIntentPublisher{
		publisher: publisher,
	}
}

func (p *amqpIntentPublisher) PublishIntentExecuted(ctx context.Context, report domain.Report) error {
	payload := IntentExecutedData{
		ExecutionID:  report.ExecutionID,
		Intent:       report.Intent.String(),
		Researched:   report.Researched,
		Secured:      report.Secured,
		SystemHealth: report.SystemHealth,
		CompletedAt:  report.CompletedAt,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.publisher.PublishMessage(ctx, contracts.EventIntentExecuted, contracts.AmqpMessage{
		ExecutionID: report.ExecutionID,
		Data:        data,
	})
}

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hilthontt/sovereign/internal/domain"
	"github.com/hilthontt/sovereign/internal/infrastructure/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	routingKey string
	message    contracts.AmqpMessage
}

func (c *capturePublisher) PublishMessage(_ context.Context, routingKey string, message contracts.AmqpMessage) error {
	c.routingKey = routingKey
	c.message = message
	return nil
}

func TestPublishIntentExecuted(t *testing.T) {
	capture := &capturePublisher{}
	completed := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	err := NewIntentPublisher(capture).PublishIntentExecuted(context.Background(), domain.Report{
		ExecutionID:  "exec-1",
		Intent:       domain.NewIntent("secure and learn about firewalls"),
		Researched:   true,
		Secured:      true,
		SystemHealth: "100% Optimal",
		CompletedAt:  completed,
	})
	require.NoError(t, err)

	assert.Equal(t, contracts.EventIntentExecuted, capture.routingKey)
	assert.Equal(t, "exec-1", capture.message.ExecutionID)

	var data IntentExecutedData
	require.NoError(t, json.Unmarshal(capture.message.Data, &data))
	assert.Equal(t, IntentExecutedData{
		ExecutionID:  "exec-1",
		Intent:       "secure and learn about firewalls",
		Researched:   true,
		Secured:      true,
		SystemHealth: "100% Optimal",
		CompletedAt:  completed,
	}, data)
}

package mq

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikededo/hubbl-sub000/internal/metrics"
)

func TestNewMessage(t *testing.T) {
	at := time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC)

	msg, err := newMessage(map[string]int{"id": 4}, at)
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, at, msg.Timestamp)
	assert.JSONEq(t, `{"id":4}`, string(msg.Body))
}

func TestNewMessage_Unencodable(t *testing.T) {
	_, err := newMessage(make(chan int), time.Now())
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	before := testutil.ToFloat64(metrics.EventsPublishedTotal.WithLabelValues("appointment.created", "skipped"))

	var p Publisher = NopPublisher{}
	require.NoError(t, p.PublishJSON(context.Background(), "appointment.created", struct{}{}))
	require.NoError(t, p.Close())

	after := testutil.ToFloat64(metrics.EventsPublishedTotal.WithLabelValues("appointment.created", "skipped"))
	assert.Equal(t, before+1, after)
}

package mq

import (
	"context"
	"encoding/json"

	"github.com/ardiansetya/goblast/internal/mailer/usecase"
	"github.com/ardiansetya/goblast/internal/pkg/instrument"
	"github.com/ardiansetya/goblast/internal/pkg/messaging"
	"github.com/ardiansetya/goblast/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishBatchCreated(ctx context.Context, msg usecase.BatchCreatedEvent) error {
	ctx, span := m.ins.Tracer("mailer.outbound.mq").Start(ctx, "PublishBatchCreated")
	defer span.End()

	body, err := json.Marshal(event.BatchCreatedMessage{
		BatchID: msg.BatchID,
		UserID:  msg.UserID,
		Total:   msg.Total,
		Pending: msg.Pending,
		Failed:  msg.Failed,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.BatchCreatedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (m *Messaging) PublishBatchCompleted(ctx context.Context, msg usecase.BatchCompletedEvent) error {
	ctx, span := m.ins.Tracer("mailer.outbound.mq").Start(ctx, "PublishBatchCompleted")
	defer span.End()

	body, err := json.Marshal(event.BatchCompletedMessage{
		BatchID: msg.BatchID,
		UserID:  msg.UserID,
		Total:   int(msg.Counts.Total),
		Sent:    int(msg.Counts.Sent),
		Failed:  int(msg.Counts.Failed),
		Pending: int(msg.Counts.Pending),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.BatchCompletedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validEvent() OutboxEvent {
	return OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "application",
		AggregateID:   uuid.NewString(),
		EventType:     "application_submitted",
		Topic:         "jobs.application.lifecycle.v1",
		Payload:       []byte(`{"application_id":"a1"}`),
		Status:        OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects Incomplete Event", func(t *testing.T) {
		repo := NewOutboxRepository(nil)

		event := validEvent()
		event.Topic = ""
		assert.Error(t, repo.Create(ctx, event))
	})

	t.Run("Inserts Through Attached Tx", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO outbox_events`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		assert.NoError(t, err)

		repo := NewOutboxRepository(db).WithTx(tx)
		assert.NoError(t, repo.Create(ctx, validEvent()))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		"e1", "r1", "application", "a1", "application_submitted",
		"jobs.application.lifecycle.v1", []byte(`{}`), OutboxStatusPending, 0, time.Now(),
	)

	// Events past the attempt cap must not come back.
	mock.ExpectQuery(`FROM outbox_events`).
		WithArgs(OutboxStatusPending, OutboxStatusFailed, maxPublishAttempts, 50).
		WillReturnRows(rows)

	events, err := NewOutboxRepository(db).ListPending(ctx, 50)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "r1", events[0].RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

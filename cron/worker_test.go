package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	settlementRepo "tripnest/database/repository/settlement"
	"tripnest/models"
)

type markDueRecorder struct {
	marked []string
	result int64
	err    error
}

func (r *markDueRecorder) GetByID(context.Context, string) (*models.Settlement, error) {
	return nil, errors.New("not implemented")
}

func (r *markDueRecorder) GetByBookingID(context.Context, string) (*models.Settlement, error) {
	return nil, errors.New("not implemented")
}

func (r *markDueRecorder) List(context.Context, settlementRepo.SettlementListFilter) ([]*models.Settlement, error) {
	return nil, errors.New("not implemented")
}

func (r *markDueRecorder) MarkDue(_ context.Context, id string) (int64, error) {
	r.marked = append(r.marked, id)
	return r.result, r.err
}

func (r *markDueRecorder) MarkDueBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (r *markDueRecorder) EnsureIndexes() error { return nil }

func dueTask(t *testing.T, settlementID string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(settlementDuePayload{SettlementID: settlementID})
	require.NoError(t, err)
	return asynq.NewTask(TypeSettlementDue, payload)
}

func TestHandleSettlementDue(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the settlement due", func(t *testing.T) {
		repo := &markDueRecorder{result: 1}
		handler := handleSettlementDue(repo)

		err := handler(ctx, dueTask(t, "stl-1"))
		require.NoError(t, err)
		assert.Equal(t, []string{"stl-1"}, repo.marked)
	})

	t.Run("already rolled over is not an error", func(t *testing.T) {
		repo := &markDueRecorder{result: 0}
		handler := handleSettlementDue(repo)

		err := handler(ctx, dueTask(t, "stl-1"))
		assert.NoError(t, err)
	})

	t.Run("storage error propagates for retry", func(t *testing.T) {
		repo := &markDueRecorder{err: errors.New("mongo down")}
		handler := handleSettlementDue(repo)

		err := handler(ctx, dueTask(t, "stl-1"))
		assert.Error(t, err)
	})

	t.Run("garbage payload fails without touching storage", func(t *testing.T) {
		repo := &markDueRecorder{}
		handler := handleSettlementDue(repo)

		err := handler(ctx, asynq.NewTask(TypeSettlementDue, []byte("{broken")))
		assert.Error(t, err)
		assert.Empty(t, repo.marked)
	})
}

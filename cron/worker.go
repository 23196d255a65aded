package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"tripnest/config"
	settlementRepo "tripnest/database/repository/settlement"
	"tripnest/models"
	"tripnest/utils"
)

const TypeSettlementDue = "settlement:due"

// settlementDuePayload is the asynq task body for a due-date rollover.
type settlementDuePayload struct {
	SettlementID string `json:"settlementId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// SettlementEnqueuer schedules settlement:due tasks at each settlement's
// scheduled date. It implements booking.TaskEnqueuer.
type SettlementEnqueuer struct {
	client *asynq.Client
}

// NewSettlementEnqueuer creates the asynq client for settlement scheduling.
func NewSettlementEnqueuer() *SettlementEnqueuer {
	return &SettlementEnqueuer{client: asynq.NewClient(redisOpts())}
}

func (e *SettlementEnqueuer) EnqueueSettlementDue(settlement *models.Settlement) error {
	payload, err := json.Marshal(settlementDuePayload{SettlementID: settlement.ID})
	if err != nil {
		return fmt.Errorf("marshal settlement task: %w", err)
	}
	task := asynq.NewTask(TypeSettlementDue, payload)
	_, err = e.client.Enqueue(task,
		asynq.ProcessAt(settlement.ScheduledDate),
		asynq.MaxRetry(5),
		asynq.TaskID("settlement-due-"+settlement.ID),
	)
	return err
}

// Close releases the underlying asynq client.
func (e *SettlementEnqueuer) Close() error {
	return e.client.Close()
}

// InitSettlementWorker runs the async worker in background. It flips
// settlements from pending to due when their scheduled date arrives, and
// sweeps hourly for anything whose enqueue was lost.
func InitSettlementWorker(repo settlementRepo.SettlementRepository) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSettlementDue, handleSettlementDue(repo))

	go startSweep(repo)

	go func() {
		logger.Info("starting settlement worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("settlement worker stopped", zap.Error(err))
		}
	}()
}

func handleSettlementDue(repo settlementRepo.SettlementRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload settlementDuePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal settlement task: %w", err)
		}

		modified, err := repo.MarkDue(ctx, payload.SettlementID)
		if err != nil {
			return err
		}
		if modified == 0 {
			// Already due or paid; the sweep may have beaten us here.
			utils.GetLogger().Debug("settlement already rolled over",
				zap.String("settlementId", payload.SettlementID))
			return nil
		}

		utils.GetLogger().Info("settlement due",
			zap.String("settlementId", payload.SettlementID))
		return nil
	}
}

// startSweep periodically rolls over every pending settlement whose
// scheduled date has passed. This backstops lost enqueues.
func startSweep(repo settlementRepo.SettlementRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		modified, err := repo.MarkDueBefore(context.Background(), time.Now().UTC())
		if err != nil {
			utils.GetLogger().Warn("settlement sweep failed", zap.Error(err))
			continue
		}
		if modified > 0 {
			utils.GetLogger().Info("settlement sweep rolled over settlements",
				zap.Int64("count", modified))
		}
	}
}

package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/config"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/repository"
)

// StaleRequestSweepJob rejects pending join requests that can never be
// accepted anymore: their team is full or its dossier is locked.
//
// The accept path already cascade-rejects on completion, so under normal
// operation this job finds nothing. It exists for the gaps that path cannot
// cover, like a dossier submitted while applications were still arriving.
type StaleRequestSweepJob struct {
	rules  *config.RulesConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStaleRequestSweepJob creates the sweep job.
func NewStaleRequestSweepJob(rules *config.RulesConfig, repo *repository.Repository, logger *zap.Logger) *StaleRequestSweepJob {
	return &StaleRequestSweepJob{rules: rules, repo: repo, logger: logger}
}

// Name identifies the job in scheduler registration and logs.
func (j *StaleRequestSweepJob) Name() string { return "stale_request_sweep" }

// Execute runs one sweep pass.
func (j *StaleRequestSweepJob) Execute() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stale, err := j.repo.JoinRequest.ListStalePending(ctx, j.rules.TeamSize)
	if err != nil {
		j.logger.Error("stale request sweep: listing failed", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	rejected := 0
	for i := range stale {
		if err := j.repo.JoinRequest.UpdateStatus(ctx, stale[i].JoinRequestID, model.JoinRequestRejected); err != nil {
			j.logger.Error("stale request sweep: reject failed",
				zap.String("request_id", stale[i].JoinRequestID),
				zap.Error(err),
			)
			continue
		}
		rejected++
	}

	j.logger.Info("stale request sweep completed",
		zap.Int("found", len(stale)),
		zap.Int("rejected", rejected),
	)
}

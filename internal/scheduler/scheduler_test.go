package scheduler_test

import (
	"testing"

	"hvz-backend/internal/config"
	"hvz-backend/internal/jobs"
	"hvz-backend/internal/scheduler"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RegistersJobs(t *testing.T) {
	cfg := &config.Config{
		Scheduler: config.SchedulerConfig{
			ReleaseStaleGames:     "0 0 * * * *",
			MaxActiveGameAgeHours: 24,
		},
	}
	s := scheduler.NewScheduler(jobs.NewJobRunner(nil, nil, cfg))
	assert.True(t, s.IsRunning())
}

func TestScheduler_BadSpecRegistersNothing(t *testing.T) {
	cfg := &config.Config{
		Scheduler: config.SchedulerConfig{
			ReleaseStaleGames: "not a cron spec",
		},
	}
	s := scheduler.NewScheduler(jobs.NewJobRunner(nil, nil, cfg))
	assert.False(t, s.IsRunning())
}

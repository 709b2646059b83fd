package worker

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"aventura_tours/internal/usecase"

	"github.com/robfig/cron/v3"
)

// StartScheduler wires the recurring billing jobs. Disabled entirely when
// CRON_DISABLED is set, so tests and one-off tooling never spawn jobs.
func StartScheduler(installments usecase.IInstallmentUseCase) *cron.Cron {
	if isCronDisabled() {
		log.Printf("[worker][scheduler] cron disabled")
		return nil
	}

	overdueSweepSpec := getenvDefault("CRON_OVERDUE_SWEEP", "@hourly")
	remindersSpec := getenvDefault("CRON_REMINDERS", "0 8 * * *")

	c := cron.New()

	if _, err := c.AddFunc(overdueSweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		flagged, err := installments.SweepOverdue(ctx, time.Now().UTC())
		if err != nil {
			log.Printf("[worker][scheduler] overdue sweep failed err=%v", err)
			return
		}
		log.Printf("[worker][scheduler] overdue sweep done flagged=%d", flagged)
	}); err != nil {
		log.Fatalf("failed to register overdue sweep job: %v", err)
	}

	if _, err := c.AddFunc(remindersSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		sent, err := installments.SendDueReminders(ctx, time.Now().UTC())
		if err != nil {
			log.Printf("[worker][scheduler] reminder run failed err=%v", err)
			return
		}
		log.Printf("[worker][scheduler] reminder run done sent=%d", sent)
	}); err != nil {
		log.Fatalf("failed to register reminder job: %v", err)
	}

	c.Start()
	log.Printf("[worker][scheduler] started sweep=%q reminders=%q", overdueSweepSpec, remindersSpec)
	return c
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isCronDisabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CRON_DISABLED")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

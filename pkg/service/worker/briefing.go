package worker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Notifier delivers a briefing message to the user.
type Notifier interface {
	PostMessage(ctx context.Context, text string) error
}

// MorningBriefingWorker posts a daily digest of scheduled actions at
// the time configured on the user profile.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type MorningBriefingWorker struct {
	repo     interfaces.Repository
	notifier Notifier
	interval time.Duration
	now      func() time.Time
	lastSent string
	stopCh   chan struct{}
	doneCh   chan struct{}
}

type BriefingOption func(*MorningBriefingWorker)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) BriefingOption {
	return func(w *MorningBriefingWorker) {
		w.now = now
	}
}

func NewMorningBriefingWorker(repo interfaces.Repository, notifier Notifier, opts ...BriefingOption) *MorningBriefingWorker {
	w := &MorningBriefingWorker{
		repo:     repo,
		notifier: notifier,
		interval: time.Minute,
		now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins the briefing loop in a background goroutine.
func (w *MorningBriefingWorker) Start(ctx context.Context) error {
	logging.Default().Info("Morning briefing worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *MorningBriefingWorker) Stop() {
	logging.Default().Info("Morning briefing worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Morning briefing worker stopped")
}

func (w *MorningBriefingWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Tick(ctx); err != nil {
				logging.Default().Error("Morning briefing failed (will retry next tick)",
					"error", err.Error())
			}

		case <-w.stopCh:
			logging.Default().Info("Morning briefing worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Morning briefing worker context cancelled")
			return
		}
	}
}

// Tick checks whether the briefing is due and sends it at most once per
// day. It is exported so tests can drive the schedule directly.
func (w *MorningBriefingWorker) Tick(ctx context.Context) error {
	user, err := w.repo.User().Get(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load user profile")
	}

	now := w.now()
	today := now.Format("2006-01-02")
	if w.lastSent == today {
		return nil
	}

	due, err := time.ParseInLocation("2006-01-02 15:04", today+" "+user.MorningBriefingTime, now.Location())
	if err != nil {
		return goerr.Wrap(err, "invalid briefing time on profile", goerr.V("time", user.MorningBriefingTime))
	}
	if now.Before(due) {
		return nil
	}

	text, err := w.buildBriefing(ctx, now)
	if err != nil {
		return err
	}

	if err := w.notifier.PostMessage(ctx, text); err != nil {
		return goerr.Wrap(err, "failed to deliver briefing")
	}

	w.lastSent = today
	logging.Default().Info("Morning briefing sent", "date", today)
	return nil
}

func (w *MorningBriefingWorker) buildBriefing(ctx context.Context, now time.Time) (string, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	actions, err := w.repo.Action().ListScheduledBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return "", goerr.Wrap(err, "failed to list scheduled actions")
	}

	if len(actions) == 0 {
		return "Good morning! Nothing scheduled for today.", nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Good morning! You have %d item(s) today:\n", len(actions))
	for _, action := range actions {
		fmt.Fprintf(&sb, "• %s %s (%s)\n",
			action.ScheduledAt.Format("15:04"), action.Content, action.Type)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

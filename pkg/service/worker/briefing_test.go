package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/braindump-app/braindump/pkg/repository/memory"
	"github.com/braindump-app/braindump/pkg/service/worker"
	"github.com/m-mizutani/gt"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) PostMessage(ctx context.Context, text string) error {
	n.messages = append(n.messages, text)
	return nil
}

func setupBriefing(t *testing.T, now time.Time) (*worker.MorningBriefingWorker, *memory.Memory, *recordingNotifier) {
	t.Helper()

	repo := memory.New()
	gt.R1(repo.User().Save(context.Background(), model.DefaultUser())).NoError(t)

	notifier := &recordingNotifier{}
	w := worker.NewMorningBriefingWorker(repo, notifier, worker.WithClock(func() time.Time {
		return now
	}))
	return w, repo, notifier
}

func TestBriefingNotDueBeforeConfiguredTime(t *testing.T) {
	now := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC) // default briefing is 09:00
	w, _, notifier := setupBriefing(t, now)

	gt.NoError(t, w.Tick(context.Background()))
	gt.Array(t, notifier.messages).Length(0)
}

func TestBriefingSentOncePerDay(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	w, repo, notifier := setupBriefing(t, now)
	ctx := context.Background()

	at := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)
	gt.R1(repo.Action().Create(ctx, &model.Action{
		Type:        types.ActionTypeCalendarEvent,
		Content:     "dentist",
		ScheduledAt: &at,
		Confidence:  0.9,
	})).NoError(t)

	gt.NoError(t, w.Tick(ctx))
	gt.Array(t, notifier.messages).Length(1)
	gt.Value(t, notifier.messages[0]).Equal("Good morning! You have 1 item(s) today:\n• 14:00 dentist (CALENDAR_EVENT)")

	// Second tick the same day is a no-op
	gt.NoError(t, w.Tick(ctx))
	gt.Array(t, notifier.messages).Length(1)
}

func TestBriefingWithNothingScheduled(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	w, _, notifier := setupBriefing(t, now)

	gt.NoError(t, w.Tick(context.Background()))
	gt.Array(t, notifier.messages).Length(1)
	gt.Value(t, notifier.messages[0]).Equal("Good morning! Nothing scheduled for today.")
}

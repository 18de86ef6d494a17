package usecase_test

import (
	"testing"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/braindump-app/braindump/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestNormalizeValidReply(t *testing.T) {
	raw := `{
		"summary": "Groceries and a dentist visit",
		"actions": [
			{"type": "SHOPPING_ITEM", "content": "buy milk", "category": "Groceries", "confidence": 0.95},
			{"type": "CALENDAR_EVENT", "content": "dentist appointment", "scheduled_at": "2026-09-01T14:30:00Z", "priority": "HIGH", "confidence": 0.88}
		]
	}`

	result := gt.R1(usecase.NormalizeResult(raw)).NoError(t)
	gt.Value(t, result.Summary).Equal("Groceries and a dentist visit")
	gt.Array(t, result.Actions).Length(2)

	first := result.Actions[0]
	gt.Value(t, first.Type).Equal(types.ActionTypeShoppingItem)
	gt.Value(t, first.Content).Equal("buy milk")
	gt.Value(t, first.Confidence).Equal(0.95)

	second := result.Actions[1]
	gt.Value(t, second.Priority).Equal(types.PriorityHigh)
	gt.Value(t, second.ScheduledAt.UTC()).Equal(time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC))
}

func TestNormalizeFencedReply(t *testing.T) {
	raw := "```json\n{\"summary\": \"note\", \"actions\": [{\"type\": \"NOTE\", \"content\": \"remember this\", \"confidence\": 0.5}]}\n```"

	result := gt.R1(usecase.NormalizeResult(raw)).NoError(t)
	gt.Array(t, result.Actions).Length(1)
	gt.Value(t, result.Actions[0].Type).Equal(types.ActionTypeNote)
}

func TestNormalizeRepairsBrokenJSON(t *testing.T) {
	// trailing comma, unquoted key
	raw := `{"summary": "note", "actions": [{"type": "TODO", content: "call mom", "confidence": 0.7},]}`

	result := gt.R1(usecase.NormalizeResult(raw)).NoError(t)
	gt.Array(t, result.Actions).Length(1)
	gt.Value(t, result.Actions[0].Content).Equal("call mom")
}

func TestNormalizeRejectsNonJSON(t *testing.T) {
	_, err := usecase.NormalizeResult("I could not process that request, sorry!")
	gt.Error(t, err).Is(types.ErrMalformedModelOutput)
}

func TestNormalizeRejectsMissingSummary(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"absent", `{"actions": [{"type": "TODO", "content": "call mom", "confidence": 0.9}]}`},
		{"empty", `{"summary": "", "actions": []}`},
		{"whitespace", `{"summary": "   ", "actions": []}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := usecase.NormalizeResult(tc.raw)
			gt.Error(t, err).Is(types.ErrMalformedModelOutput)
		})
	}
}

func TestNormalizeRejectsMissingConfidence(t *testing.T) {
	raw := `{"summary": "note", "actions": [{"type": "TODO", "content": "call mom"}]}`
	_, err := usecase.NormalizeResult(raw)
	gt.Error(t, err).Is(types.ErrMalformedModelOutput)
}

func TestNormalizeRejectsConfidenceOutOfRange(t *testing.T) {
	raw := `{"summary": "note", "actions": [{"type": "TODO", "content": "call mom", "confidence": 1.5}]}`
	_, err := usecase.NormalizeResult(raw)
	gt.Error(t, err).Is(types.ErrMalformedModelOutput)
}

func TestNormalizeRejectsUnknownType(t *testing.T) {
	raw := `{"summary": "note", "actions": [{"type": "MEETING", "content": "standup", "confidence": 0.9}]}`
	_, err := usecase.NormalizeResult(raw)
	gt.Error(t, err).Is(types.ErrMalformedModelOutput)
}

func TestNormalizeRejectsEmptyContent(t *testing.T) {
	raw := `{"summary": "note", "actions": [{"type": "TODO", "content": "   ", "confidence": 0.9}]}`
	_, err := usecase.NormalizeResult(raw)
	gt.Error(t, err).Is(types.ErrMalformedModelOutput)
}

func TestNormalizeRejectsBadScheduledAt(t *testing.T) {
	raw := `{"summary": "note", "actions": [{"type": "REMINDER", "content": "water plants", "scheduled_at": "next tuesday", "confidence": 0.9}]}`
	_, err := usecase.NormalizeResult(raw)
	gt.Error(t, err).Is(types.ErrMalformedModelOutput)
}

func TestNormalizeDateOnlySchedule(t *testing.T) {
	raw := `{"summary": "note", "actions": [{"type": "REMINDER", "content": "water plants", "scheduled_at": "2026-09-05", "confidence": 0.9}]}`

	result := gt.R1(usecase.NormalizeResult(raw)).NoError(t)
	gt.Value(t, result.Actions[0].ScheduledAt.Format("2006-01-02")).Equal("2026-09-05")
}

func TestNormalizeEmptyActions(t *testing.T) {
	raw := `{"summary": "just rambling", "actions": []}`

	result := gt.R1(usecase.NormalizeResult(raw)).NoError(t)
	gt.Value(t, result.Summary).Equal("just rambling")
	gt.Array(t, result.Actions).Length(0)
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, usecase.StripFences(tc.in)).Equal(tc.want)
		})
	}
}

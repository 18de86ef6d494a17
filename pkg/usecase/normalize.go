package usecase

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/kaptinlin/jsonrepair"
	"github.com/m-mizutani/goerr/v2"
)

// wireResult matches the model's reply shape. Pointer fields let the
// normalizer tell an absent value from a zero one.
type wireResult struct {
	Summary string       `json:"summary"`
	Actions []wireAction `json:"actions"`
}

type wireAction struct {
	Type        string   `json:"type"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	ScheduledAt *string  `json:"scheduled_at"`
	Priority    string   `json:"priority"`
	Confidence  *float64 `json:"confidence"`
}

var scheduledAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// normalizeResult turns raw model output into a validated result. A
// reply that cannot be parsed even after repair, or that parses into
// invalid actions, is rejected as a whole.
func normalizeResult(raw string) (*model.BrainDumpResult, error) {
	stripped := stripFences(raw)

	var wire wireResult
	if err := json.Unmarshal([]byte(stripped), &wire); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(stripped)
		if repairErr != nil {
			return nil, goerr.Wrap(types.ErrMalformedModelOutput, "reply is not JSON",
				goerr.V(types.RawOutputKey, raw))
		}
		if err := json.Unmarshal([]byte(repaired), &wire); err != nil {
			return nil, goerr.Wrap(types.ErrMalformedModelOutput, "reply is not JSON even after repair",
				goerr.V(types.RawOutputKey, raw))
		}
	}

	summary := strings.TrimSpace(wire.Summary)
	if summary == "" {
		return nil, goerr.Wrap(types.ErrMalformedModelOutput, "reply has no summary",
			goerr.V(types.RawOutputKey, raw))
	}

	result := &model.BrainDumpResult{
		Summary: summary,
		Actions: make([]model.Action, 0, len(wire.Actions)),
	}

	for i, wa := range wire.Actions {
		action, err := normalizeAction(wa)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid action in reply",
				goerr.V("index", i),
				goerr.V(types.RawOutputKey, raw))
		}
		result.Actions = append(result.Actions, *action)
	}

	return result, nil
}

func normalizeAction(wa wireAction) (*model.Action, error) {
	actionType, err := types.ParseActionType(wa.Type)
	if err != nil {
		return nil, goerr.Wrap(types.ErrMalformedModelOutput, "unknown action type",
			goerr.V("type", wa.Type))
	}

	content := strings.TrimSpace(wa.Content)
	if content == "" {
		return nil, goerr.Wrap(types.ErrMalformedModelOutput, "action has no content")
	}

	if wa.Confidence == nil {
		return nil, goerr.Wrap(types.ErrMalformedModelOutput, "action has no confidence")
	}
	confidence := *wa.Confidence
	if confidence < 0 || confidence > 1 {
		return nil, goerr.Wrap(types.ErrMalformedModelOutput, "confidence out of range",
			goerr.V("confidence", confidence))
	}

	priority, err := types.ParsePriority(wa.Priority)
	if err != nil {
		return nil, goerr.Wrap(types.ErrMalformedModelOutput, "unknown priority",
			goerr.V("priority", wa.Priority))
	}

	action := &model.Action{
		Type:       actionType,
		Content:    content,
		Category:   strings.TrimSpace(wa.Category),
		Priority:   priority,
		Confidence: confidence,
	}

	if wa.ScheduledAt != nil && strings.TrimSpace(*wa.ScheduledAt) != "" {
		at, err := parseScheduledAt(strings.TrimSpace(*wa.ScheduledAt))
		if err != nil {
			return nil, err
		}
		action.ScheduledAt = &at
	}

	return action, nil
}

func parseScheduledAt(s string) (time.Time, error) {
	for _, layout := range scheduledAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, goerr.Wrap(types.ErrMalformedModelOutput, "unparseable scheduled_at",
		goerr.V("scheduled_at", s))
}

// stripFences removes a surrounding markdown code fence, with or
// without a language tag.
func stripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		head := strings.TrimSpace(trimmed[:idx])
		if head == "" || isFenceTag(head) {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

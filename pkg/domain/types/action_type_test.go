package types_test

import (
	"testing"

	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseActionType(t *testing.T) {
	parsed := gt.R1(types.ParseActionType("CALENDAR_EVENT")).NoError(t)
	gt.Value(t, parsed).Equal(types.ActionTypeCalendarEvent)

	_, err := types.ParseActionType("MEETING")
	gt.Error(t, err)

	_, err = types.ParseActionType("")
	gt.Error(t, err)
}

func TestActionTypeScheduled(t *testing.T) {
	gt.Value(t, types.ActionTypeCalendarEvent.Scheduled()).Equal(true)
	gt.Value(t, types.ActionTypeAlarm.Scheduled()).Equal(true)
	gt.Value(t, types.ActionTypeReminder.Scheduled()).Equal(true)
	gt.Value(t, types.ActionTypeTodo.Scheduled()).Equal(false)
	gt.Value(t, types.ActionTypeShoppingItem.Scheduled()).Equal(false)
}

func TestParsePriority(t *testing.T) {
	parsed := gt.R1(types.ParsePriority("HIGH")).NoError(t)
	gt.Value(t, parsed).Equal(types.PriorityHigh)

	// empty priority is valid: urgency was not inferable
	empty := gt.R1(types.ParsePriority("")).NoError(t)
	gt.Value(t, empty).Equal(types.Priority(""))

	_, err := types.ParsePriority("URGENT")
	gt.Error(t, err)
}

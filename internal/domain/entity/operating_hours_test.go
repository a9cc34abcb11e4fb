package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/isokohq/isoko-api/internal/domain/entity"
)

func strptr(s string) *string { return &s }

// Tuesday 2026-09-01 is a known weekday anchor for the tests.
func tuesdayAt(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func weekdaySchedule() entity.WeekSchedule {
	return entity.WeekSchedule{
		{
			DayOfWeek:  int(time.Tuesday),
			IsOpen:     true,
			OpenTime:   "09:00",
			CloseTime:  "17:00",
			BreakStart: strptr("12:00"),
			BreakEnd:   strptr("13:00"),
		},
	}
}

func TestStatusAt_DuringBreak(t *testing.T) {
	st := weekdaySchedule().StatusAt(tuesdayAt(12, 30))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "On break (returns at 13:00)", st.Status)
	assert.Equal(t, "13:00", st.NextChange)
}

func TestStatusAt_OpenBeforeBreak(t *testing.T) {
	st := weekdaySchedule().StatusAt(tuesdayAt(10, 0))
	assert.True(t, st.IsOpen)
	assert.Equal(t, "Open", st.Status)
	assert.Equal(t, "12:00", st.NextChange)
}

func TestStatusAt_OpenAfterBreak(t *testing.T) {
	st := weekdaySchedule().StatusAt(tuesdayAt(14, 0))
	assert.True(t, st.IsOpen)
	assert.Equal(t, "17:00", st.NextChange)
}

func TestStatusAt_BeforeOpening(t *testing.T) {
	st := weekdaySchedule().StatusAt(tuesdayAt(8, 15))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "Closed (opens at 09:00)", st.Status)
	assert.Equal(t, "09:00", st.NextChange)
}

func TestStatusAt_AfterClosing(t *testing.T) {
	st := weekdaySchedule().StatusAt(tuesdayAt(18, 0))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "Closed", st.Status)
	assert.Empty(t, st.NextChange)
}

func TestStatusAt_DayWithoutRow(t *testing.T) {
	// Schedule only has Tuesday; asking on a Wednesday.
	st := weekdaySchedule().StatusAt(time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "Closed today", st.Status)
}

func TestValidate(t *testing.T) {
	day := entity.OperatingHours{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"}
	assert.NoError(t, day.Validate())

	missingClose := entity.OperatingHours{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00"}
	assert.Error(t, missingClose.Validate())

	halfBreak := day
	halfBreak.BreakStart = strptr("12:00")
	assert.Error(t, halfBreak.Validate())

	breakOutside := day
	breakOutside.BreakStart = strptr("07:00")
	breakOutside.BreakEnd = strptr("08:00")
	assert.Error(t, breakOutside.Validate())

	closedDay := entity.OperatingHours{DayOfWeek: 0, IsOpen: false}
	assert.NoError(t, closedDay.Validate())
}

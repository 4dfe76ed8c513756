package railnet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	aMonday = time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	aSunday = time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
)

func TestMatchDate(t *testing.T) {
	weekdaysOnly := WeeklyCirculationPattern{
		Monday:    true,
		Tuesday:   true,
		Wednesday: true,
		Thursday:  true,
		Friday:    true,
	}

	assert.True(t, weekdaysOnly.MatchDate(aMonday))
	assert.False(t, weekdaysOnly.MatchDate(aSunday))

	sundaysOnly := WeeklyCirculationPattern{Sunday: true}
	assert.False(t, sundaysOnly.MatchDate(aMonday))
	assert.True(t, sundaysOnly.MatchDate(aSunday))
}

func TestMatchDateFailsOpenWithoutInformation(t *testing.T) {
	var unset WeeklyCirculationPattern

	for day := 0; day < 7; day++ {
		assert.True(t, unset.MatchDate(aMonday.AddDate(0, 0, day)))
	}
}

func TestScheduleRunsOn(t *testing.T) {
	schedule := ScheduleEntry{
		Circulation: WeeklyCirculationPattern{Monday: true},
	}

	assert.True(t, schedule.RunsOn(aMonday))
	assert.False(t, schedule.RunsOn(aSunday))
}

package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codeprep/backend/models"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "Google::Two Sum", Key("Google", "Two Sum"))
	assert.NotEqual(t, Key("Google", "Two Sum"), Key("Amazon", "Two Sum"))
}

func TestApplyAddIsIdempotent(t *testing.T) {
	user := &models.User{}
	key := Key("Google", "Two Sum")

	assert.NoError(t, Apply(user, key, ActionAdd, "2024-01-01"))
	assert.NoError(t, Apply(user, key, ActionAdd, "2024-01-01"))

	assert.Equal(t, []string{key}, []string(user.Solved))
	assert.Equal(t, []string{"2024-01-01"}, []string(user.SolvedDates))
	assert.Len(t, user.Recent, 1)
}

func TestApplyAddThenRemoveRestoresSolvedSet(t *testing.T) {
	user := &models.User{Solved: []string{"Amazon::LRU Cache"}}
	key := Key("Google", "Two Sum")

	assert.NoError(t, Apply(user, key, ActionAdd, "2024-01-01"))
	assert.NoError(t, Apply(user, key, ActionRemove, "2024-01-01"))

	assert.Equal(t, []string{"Amazon::LRU Cache"}, []string(user.Solved))
}

func TestApplyRemoveStripsRecentButKeepsDates(t *testing.T) {
	user := &models.User{}
	key := Key("Google", "Two Sum")
	other := Key("Google", "Add Two Numbers")

	assert.NoError(t, Apply(user, key, ActionAdd, "2024-01-01"))
	assert.NoError(t, Apply(user, key, ActionAdd, "2024-01-02"))
	assert.NoError(t, Apply(user, other, ActionAdd, "2024-01-02"))
	assert.NoError(t, Apply(user, key, ActionRemove, "2024-01-03"))

	// All recent entries for the key are gone, regardless of date.
	assert.Len(t, user.Recent, 1)
	assert.Equal(t, other, user.Recent[0].Name)
	// The date log is never touched on remove.
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, []string(user.SolvedDates))
}

func TestApplyTwoSolvesSameDay(t *testing.T) {
	user := &models.User{}

	assert.NoError(t, Apply(user, Key("Google", "Two Sum"), ActionAdd, "2024-01-01"))
	assert.NoError(t, Apply(user, Key("Google", "3Sum"), ActionAdd, "2024-01-01"))

	assert.Len(t, user.Solved, 2)
	assert.Equal(t, []string{"2024-01-01"}, []string(user.SolvedDates))
	assert.Len(t, user.Recent, 2)
}

func TestApplyRejectsUnknownAction(t *testing.T) {
	user := &models.User{}
	assert.Error(t, Apply(user, "k", "toggle", "2024-01-01"))
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  StreakStats
	}{
		{"empty", nil, StreakStats{}},
		{"single day", []string{"2024-01-01"}, StreakStats{1, 1, "2024-01-01"}},
		{"three consecutive", []string{"2024-01-01", "2024-01-02", "2024-01-03"}, StreakStats{3, 3, "2024-01-03"}},
		{"gap resets current", []string{"2024-01-01", "2024-01-05"}, StreakStats{1, 1, "2024-01-05"}},
		{"best survives reset", []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-10", "2024-01-11"}, StreakStats{2, 3, "2024-01-11"}},
		{"unsorted input", []string{"2024-01-03", "2024-01-01", "2024-01-02"}, StreakStats{3, 3, "2024-01-03"}},
		{"duplicate day is a no-op", []string{"2024-01-01", "2024-01-02", "2024-01-02"}, StreakStats{2, 2, "2024-01-02"}},
		{"month boundary", []string{"2024-01-31", "2024-02-01"}, StreakStats{2, 2, "2024-02-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streaks(tt.dates))
		})
	}
}

func TestHeatmapCountsFromRecent(t *testing.T) {
	dates := []string{"2024-01-01", "2024-01-02"}
	recent := []models.RecentActivity{
		{Name: "Google::Two Sum", Date: "2024-01-02"},
		{Name: "Google::3Sum", Date: "2024-01-02"},
	}

	buckets := Heatmap(dates, recent)

	assert.Equal(t, []Bucket{
		// 2024-01-01's entries were stripped by a remove; the day still shows.
		{Date: "2024-01-01", Count: 1},
		{Date: "2024-01-02", Count: 2},
	}, buckets)
}

func TestHeatmapEmpty(t *testing.T) {
	assert.Empty(t, Heatmap(nil, nil))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, Progress(0, 500))
	assert.Equal(t, 50, Progress(250, 500))
	assert.Equal(t, 1, Progress(3, 500))
	assert.Equal(t, 100, Progress(500, 500))
	assert.Equal(t, 0, Progress(5, 0))
}

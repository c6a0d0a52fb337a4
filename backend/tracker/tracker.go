// Package tracker holds the solved-problem bookkeeping and the statistics
// derived from it. Everything here is pure: handlers load the account
// record, call in, and persist whatever comes back.
package tracker

import (
	"fmt"
	"sort"
	"time"

	"codeprep/backend/models"
)

const dateLayout = "2006-01-02"

const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// Key builds the problem key scoping solved status per company listing,
// so the same problem under two companies tracks independently.
func Key(company, problem string) string {
	return company + "::" + problem
}

// Today returns the current UTC calendar date.
func Today() string {
	return time.Now().UTC().Format(dateLayout)
}

// Apply mutates the user's tracking fields for one toggle action.
//
// add is idempotent: the solved set, the date log and the recent feed each
// gain at most one entry per key/date. remove drops the key from the solved
// set and strips every matching recent entry, but never touches the date
// log. Solve days stay on record even if the problems solved that day are
// later unmarked, which keeps streak history stable.
func Apply(user *models.User, key, action, today string) error {
	switch action {
	case ActionAdd:
		if !contains(user.Solved, key) {
			user.Solved = append(user.Solved, key)
		}
		if !contains(user.SolvedDates, today) {
			user.SolvedDates = append(user.SolvedDates, today)
		}
		for _, r := range user.Recent {
			if r.Name == key && r.Date == today {
				return nil
			}
		}
		user.Recent = append(user.Recent, models.RecentActivity{
			UserID: user.ID,
			Name:   key,
			Date:   today,
		})
	case ActionRemove:
		solved := user.Solved[:0]
		for _, s := range user.Solved {
			if s != key {
				solved = append(solved, s)
			}
		}
		user.Solved = solved

		recent := user.Recent[:0]
		for _, r := range user.Recent {
			if r.Name != key {
				recent = append(recent, r)
			}
		}
		user.Recent = recent
	default:
		return fmt.Errorf("invalid action %q: must be %q or %q", action, ActionAdd, ActionRemove)
	}
	return nil
}

type StreakStats struct {
	Current    int    `json:"streak"`
	Best       int    `json:"bestStreak"`
	LastSolved string `json:"lastSolved"`
}

// Streaks derives the current and best consecutive-day runs from the solve
// date log. Order of the input is irrelevant.
func Streaks(dates []string) StreakStats {
	parsed := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			continue
		}
		parsed = append(parsed, t)
	}
	if len(parsed) == 0 {
		return StreakStats{}
	}

	sort.Slice(parsed, func(i, j int) bool { return parsed[i].After(parsed[j]) })

	stats := StreakStats{Current: 1, Best: 1, LastSolved: parsed[0].Format(dateLayout)}
	prev := parsed[0]
	for _, d := range parsed[1:] {
		diff := int(prev.Sub(d).Hours() / 24)
		if diff == 1 {
			stats.Current++
			if stats.Current > stats.Best {
				stats.Best = stats.Current
			}
		} else if diff > 1 {
			stats.Current = 1
		}
		// diff == 0 is a duplicate day, nothing to do
		prev = d
	}
	return stats
}

// Bucket is one heatmap cell.
type Bucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Heatmap counts solves per calendar day. The date log only marks which
// days had activity, so per-day intensity comes from the recent feed (one
// entry per problem per day); days whose entries were all stripped by
// removes still show with a count of one.
func Heatmap(dates []string, recent []models.RecentActivity) []Bucket {
	counts := make(map[string]int)
	for _, r := range recent {
		counts[r.Date]++
	}
	for _, d := range dates {
		if counts[d] == 0 {
			counts[d] = 1
		}
	}

	buckets := make([]Bucket, 0, len(counts))
	for date, count := range counts {
		buckets = append(buckets, Bucket{Date: date, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })
	return buckets
}

// Progress returns the solved percentage, rounded to the nearest integer.
// A non-positive total yields 0 rather than dividing by zero.
func Progress(solved, total int) int {
	if total <= 0 {
		return 0
	}
	return int(float64(solved)/float64(total)*100 + 0.5)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

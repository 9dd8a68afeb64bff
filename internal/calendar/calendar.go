// Package calendar holds the pure projections behind the calendar view:
// bucketing a user's tasks by the day they were created and filtering
// them down to a selected day. The functions keep no state and compare
// calendar fields in each timestamp's own location, matching the
// client's local-time calendar.
package calendar

import (
	"time"

	"github.com/Sheyman13214/todoright-api/internal/models"
)

// GroupByMonth returns a day-of-month -> task count mapping for tasks
// created in the given year and month. Days with no tasks are absent.
func GroupByMonth(tasks []models.Task, year int, month time.Month) map[int]int {
	buckets := make(map[int]int)
	for _, task := range tasks {
		y, m, d := task.CreatedAt.Date()
		if y == year && m == month {
			buckets[d]++
		}
	}
	return buckets
}

// FilterByDay returns the tasks created on the given calendar day,
// preserving their order. A nil day selects all tasks.
func FilterByDay(tasks []models.Task, day *time.Time) []models.Task {
	if day == nil {
		return tasks
	}

	y, m, d := day.Date()
	filtered := make([]models.Task, 0)
	for _, task := range tasks {
		ty, tm, td := task.CreatedAt.Date()
		if ty == y && tm == m && td == d {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

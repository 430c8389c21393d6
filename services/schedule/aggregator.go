package schedule

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	scheduleRepo "medibook/database/repository/schedule"
	"medibook/models"
)

// Aggregator computes a doctor's bookable slots grouped by calendar date.
type Aggregator interface {
	OpenSlots(ctx context.Context, doctorID string) ([]models.DaySlots, error)
}

// DefaultAggregator implements Aggregator over the doctor schedule repository.
type DefaultAggregator struct {
	Repo scheduleRepo.DoctorScheduleRepository
	Now  func() time.Time
}

// OpenSlots fetches the doctor's unbooked slots from today onward and groups
// them by date. An empty doctorID is a no-op: empty result, no fetch.
func (a *DefaultAggregator) OpenSlots(ctx context.Context, doctorID string) ([]models.DaySlots, error) {
	if doctorID == "" {
		return []models.DaySlots{}, nil
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	from := startOfDay(now())

	slots, err := a.Repo.OpenSlots(ctx, doctorID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}
	return GroupByDate(slots), nil
}

// GroupByDate buckets slots by the literal date portion of StartDateTime.
// The ISO substring is the grouping key rather than a timezone-converted
// date, so grouping and display can never disagree across midnight. Slots
// within a group are ordered ascending by parsed start time, and groups by
// date. Booked slots are dropped so they are never offered as selectable.
func GroupByDate(slots []models.DoctorSchedule) []models.DaySlots {
	open := make([]models.DoctorSchedule, 0, len(slots))
	for _, s := range slots {
		if s.IsBooked {
			continue
		}
		open = append(open, s)
	}

	sort.SliceStable(open, func(i, j int) bool {
		return parseStart(open[i]).Before(parseStart(open[j]))
	})

	days := []models.DaySlots{}
	index := make(map[string]int)
	for _, s := range open {
		date := dateKey(s.Schedule.StartDateTime)
		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, models.DaySlots{Date: date})
		}
		days[i].Slots = append(days[i].Slots, s)
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}

func dateKey(startDateTime string) string {
	if i := strings.IndexByte(startDateTime, 'T'); i >= 0 {
		return startDateTime[:i]
	}
	return startDateTime
}

func parseStart(s models.DoctorSchedule) time.Time {
	t, err := time.Parse(time.RFC3339, s.Schedule.StartDateTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

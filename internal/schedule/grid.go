package schedule

import (
	"fmt"
	"sort"
	"time"

	"channel-radio/internal/models"
)

// Layout holds the block geometry constants for the day grid.
type Layout struct {
	HourHeight     float64 // pixels per hour
	MinBlockHeight float64 // floor so short slots stay clickable
}

// DefaultLayout matches the web client's grid.
var DefaultLayout = Layout{
	HourHeight:     60,
	MinBlockHeight: 24,
}

// Fallback window shown when a day has no slots at all.
const (
	fallbackStartHour = 8
	fallbackEndHour   = 23
)

// DisplaySlot is one renderable row of the day grid: either a whole show or
// one DJ's sub-slot, clipped to the selected day. Recomputed per render,
// never persisted.
type DisplaySlot struct {
	ID     string `json:"id"`
	ShowID string `json:"show_id"`
	SlotID string `json:"slot_id,omitempty"`

	Name   string `json:"name"`
	DJName string `json:"dj_name"`
	Status string `json:"status"`

	// Clipped to the selected day's bounds
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// IsLive reports whether this slot is on air: the originating show must be
// flagged live by the backend and now must fall inside the slot interval.
func (d DisplaySlot) IsLive(now time.Time) bool {
	return d.Status == models.StatusLive && !now.Before(d.StartTime) && now.Before(d.EndTime)
}

// IsPast reports whether the slot has already finished.
func (d DisplaySlot) IsPast(now time.Time) bool {
	return d.EndTime.Before(now)
}

// DayBounds returns the midnight-to-midnight bounds of the calendar day that
// contains date, in date's own location. Any time-of-day component is ignored.
func DayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	end := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), date.Location())
	return start, end
}

// BuildDaySlots expands shows into day-clipped DisplaySlots for the calendar
// day containing date.
//
// A show with sub-slots contributes one row per overlapping sub-slot and
// never a row for the parent itself; a show without sub-slots contributes a
// single row if it overlaps the day. Intervals are clipped to the day bounds
// and anything that does not overlap is dropped for that day. Intervals with
// start >= end are broken data and are dropped too.
//
// Output is sorted ascending by clipped start time; ties fall back to the
// composite slot ID so the order is fully deterministic.
func BuildDaySlots(shows []models.Show, date time.Time) []DisplaySlot {
	dayStart, dayEnd := DayBounds(date)
	day := dayStart.Format("2006-01-02")

	var slots []DisplaySlot

	for i := range shows {
		show := &shows[i]

		if len(show.Slots) > 0 {
			for _, sub := range show.Slots {
				if !overlaps(sub.StartTime, sub.EndTime, dayStart, dayEnd) {
					continue
				}
				name := show.Name
				djName := sub.DJName
				slots = append(slots, DisplaySlot{
					ID:        fmt.Sprintf("%s:%s:%s", show.ID, sub.ID, day),
					ShowID:    show.ID,
					SlotID:    sub.ID,
					Name:      name,
					DJName:    djName,
					Status:    show.Status,
					StartTime: maxTime(sub.StartTime, dayStart),
					EndTime:   minTime(sub.EndTime, dayEnd),
				})
			}
			continue
		}

		if !overlaps(show.StartTime, show.EndTime, dayStart, dayEnd) {
			continue
		}
		slots = append(slots, DisplaySlot{
			ID:        fmt.Sprintf("%s:%s", show.ID, day),
			ShowID:    show.ID,
			Name:      show.Name,
			DJName:    show.DJName,
			Status:    show.Status,
			StartTime: maxTime(show.StartTime, dayStart),
			EndTime:   minTime(show.EndTime, dayEnd),
		})
	}

	sort.SliceStable(slots, func(a, b int) bool {
		if slots[a].StartTime.Equal(slots[b].StartTime) {
			return slots[a].ID < slots[b].ID
		}
		return slots[a].StartTime.Before(slots[b].StartTime)
	})

	return slots
}

// Current resolves the slot on air at now. A slot flagged live by the
// backend wins over one that merely contains now, mirroring how a one-time
// special overrides the recurring grid. Returns nil when nothing is on.
func Current(slots []DisplaySlot, now time.Time) *DisplaySlot {
	var bestContaining *DisplaySlot

	for i := range slots {
		slot := &slots[i]
		if now.Before(slot.StartTime) || !now.Before(slot.EndTime) {
			continue
		}
		if slot.Status == models.StatusLive {
			return slot
		}
		if bestContaining == nil {
			bestContaining = slot
		}
	}

	return bestContaining
}

// VisibleHours scans the day's slots and returns the [startHour, endHour]
// window worth rendering: min start hour to max end hour (ends with minutes
// round up), padded one hour each side and clamped to [0, 24]. An empty day
// gets the station's default evening window.
func VisibleHours(slots []DisplaySlot) (int, int) {
	if len(slots) == 0 {
		return fallbackStartHour, fallbackEndHour
	}

	minStart := 24
	maxEnd := 0
	for _, s := range slots {
		if h := s.StartTime.Hour(); h < minStart {
			minStart = h
		}
		end := s.EndTime.Hour()
		if s.EndTime.Minute() > 0 || s.EndTime.Second() > 0 || s.EndTime.Nanosecond() > 0 {
			end++ // partial hour still needs the full row
		}
		if end > maxEnd {
			maxEnd = end
		}
	}

	start := minStart - 1
	end := maxEnd + 1
	if start < 0 {
		start = 0
	}
	if end > 24 {
		end = 24
	}
	return start, end
}

// Position maps a slot to its vertical offset and height in pixels within a
// grid whose first rendered hour is windowStart.
func Position(slot DisplaySlot, windowStart int, l Layout) (top, height float64) {
	startFrac := hourFraction(slot.StartTime)
	endFrac := hourFraction(slot.EndTime)

	top = (startFrac - float64(windowStart)) * l.HourHeight
	height = (endFrac - startFrac) * l.HourHeight
	if height < l.MinBlockHeight {
		height = l.MinBlockHeight
	}
	return top, height
}

// overlaps is the inclusive interval test against the day bounds. It also
// rejects malformed intervals (start >= end).
func overlaps(start, end, dayStart, dayEnd time.Time) bool {
	if !start.Before(end) {
		return false
	}
	return !start.After(dayEnd) && !end.Before(dayStart)
}

func hourFraction(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

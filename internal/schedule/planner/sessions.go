package planner

import (
	"math"
	"time"

	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/interval"
)

const floatTolerance = 1e-9

// Plan is the result of ScheduleSessions. Sessions are sorted, disjoint,
// and never overlap an existing event.
type Plan struct {
	Sessions       []interval.Interval
	SessionLength  time.Duration
	Requested      int
	Shortfall      int
	DaysConsidered int
	WholeDays      int
}

// Placed is the number of sessions actually proposed.
func (p Plan) Placed() int {
	return len(p.Sessions)
}

// PlannedHours sums the proposed session lengths.
func (p Plan) PlannedHours() float64 {
	return interval.TotalHours(p.Sessions)
}

// ScheduleSessions proposes prep sessions for task between now and its
// deadline, avoiding events. It does not persist anything.
//
// Session length is min(max, max(min, hours / days)) where days counts the
// local days that still have at least MinSessionHours of usable window.
// ceil(hours / length) sessions are spread with weights growing toward the
// deadline, each taking the latest free slot of its day. A session that does
// not fit on its day moves to the closest later day with room, and only then
// to earlier days. Finally the later half of [now, deadline) must hold at
// least as many sessions as the earlier half: sessions that start before the
// midpoint are moved past it, or dropped when the later half is full.
// Sessions that fit nowhere are reported as Shortfall.
func ScheduleSessions(task model.Task, events []model.Event, now time.Time, opt Options) (Plan, error) {
	if task.Deadline == nil {
		return Plan{}, ErrNoDeadline
	}
	if task.EstimatedHours <= 0 {
		return Plan{}, ErrNonPositiveHours
	}

	opt = opt.withDefaults(now)
	now = now.In(opt.Location)
	deadline := task.Deadline.In(opt.Location)

	if !deadline.After(now) {
		return Plan{}, ErrDeadlinePassed
	}
	wholeDays := int(deadline.Sub(now) / (hoursPerDay * time.Hour))
	if wholeDays < 1 {
		return Plan{}, ErrDeadlineTooClose
	}

	days := dayWindows(now, deadline, opt)
	sessionHours, count := sessionShape(task.EstimatedHours, len(days), opt)
	sessionLen := time.Duration(sessionHours * float64(time.Hour)).Round(time.Minute)

	plan := Plan{
		SessionLength:  sessionLen,
		Requested:      count,
		DaysConsidered: len(days),
		WholeDays:      wholeDays,
	}
	if len(days) == 0 {
		plan.Shortfall = count
		return plan, nil
	}

	var booked []interval.Interval
	for _, e := range events {
		if iv := e.Interval(); iv.Valid() {
			booked = append(booked, iv)
		}
	}
	busy := append([]interval.Interval(nil), booked...)

	quotas := distribute(count, len(days))
	var overflow []int
	for i, q := range quotas {
		for k := 0; k < q; k++ {
			s, ok := fitInDay(days[i], sessionLen, busy)
			if !ok {
				overflow = append(overflow, i)
				continue
			}
			busy = append(busy, s)
			plan.Sessions = append(plan.Sessions, s)
		}
	}

	for _, origin := range overflow {
		placed := false
		for _, d := range overflowDays(origin, len(days)) {
			if s, ok := fitInDay(days[d], sessionLen, busy); ok {
				busy = append(busy, s)
				plan.Sessions = append(plan.Sessions, s)
				placed = true
				break
			}
		}
		if !placed {
			plan.Shortfall++
		}
	}

	var dropped int
	plan.Sessions, dropped = balanceTowardDeadline(plan.Sessions, booked, days, sessionLen, interval.New(now, deadline))
	plan.Shortfall += dropped
	return plan, nil
}

// balanceTowardDeadline moves the earliest session into the latest free slot
// of the second half of window until that half holds at least as many
// sessions as the first. A session with nowhere to go is dropped. The result
// is sorted; the second value counts dropped sessions.
func balanceTowardDeadline(sessions, booked, days []interval.Interval, d time.Duration, window interval.Interval) ([]interval.Interval, int) {
	mid := window.Start.Add(window.Duration() / 2)
	late := interval.New(mid, window.End)
	dropped := 0
	for {
		interval.Sort(sessions)
		if early := countBefore(sessions, mid); len(sessions)-early >= early {
			return sessions, dropped
		}

		rest := append([]interval.Interval(nil), sessions[1:]...)
		busy := append(append([]interval.Interval(nil), booked...), rest...)
		moved := false
		for i := len(days) - 1; i >= 0 && !moved; i-- {
			w, ok := days[i].Clip(late)
			if !ok {
				continue
			}
			if s, ok := fitInDay(w, d, busy); ok {
				rest = append(rest, s)
				moved = true
			}
		}
		if !moved {
			dropped++
		}
		sessions = rest
	}
}

func countBefore(sessions []interval.Interval, t time.Time) int {
	n := 0
	for _, s := range sessions {
		if s.Start.Before(t) {
			n++
		}
	}
	return n
}

// sessionShape returns the per-session length in hours and the session count.
func sessionShape(hours float64, days int, opt Options) (float64, int) {
	preferred := math.Min(opt.MaxSessionHours, math.Max(opt.MinSessionHours, hours/float64(max(1, days))))
	count := int(math.Ceil(hours/preferred - floatTolerance))
	if count < 1 {
		count = 1
	}

	length := hours / float64(count)
	if length < opt.MinSessionHours {
		// Equal split would go below the minimum: use fewer, longer sessions.
		count = max(1, int(math.Floor(hours/opt.MinSessionHours+floatTolerance)))
		length = math.Max(opt.MinSessionHours, hours/float64(count))
	}
	return length, count
}

// dayWindows returns, for each local day from now's day up to the deadline,
// the usable window clipped to [now, deadline). Days with less than
// MinSessionHours of window are skipped.
func dayWindows(now, deadline time.Time, opt Options) []interval.Interval {
	bounds := interval.New(now, deadline)
	minLen := time.Duration(opt.MinSessionHours * float64(time.Hour))

	var out []interval.Interval
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, opt.Location)
	for day.Before(deadline) {
		start := time.Date(day.Year(), day.Month(), day.Day(), opt.DayStartHour, 0, 0, 0, opt.Location)
		end := time.Date(day.Year(), day.Month(), day.Day(), opt.DayEndHour, 0, 0, 0, opt.Location)
		if w, ok := interval.New(start, end).Clip(bounds); ok && w.Duration() >= minLen {
			out = append(out, w)
		}
		day = day.AddDate(0, 0, 1)
	}
	return out
}

// fitInDay returns the latest slot of length d inside day that is free of busy.
func fitInDay(day interval.Interval, d time.Duration, busy []interval.Interval) (interval.Interval, bool) {
	gaps := interval.Free(day, busy)
	for i := len(gaps) - 1; i >= 0; i-- {
		if gaps[i].Duration() >= d {
			return interval.New(gaps[i].End.Add(-d), gaps[i].End), true
		}
	}
	return interval.Interval{}, false
}

// overflowDays lists the other day indexes for a session that did not fit on
// origin: later days nearest first, then earlier days nearest first.
func overflowDays(origin, n int) []int {
	out := make([]int, 0, n-1)
	for d := origin + 1; d < n; d++ {
		out = append(out, d)
	}
	for d := origin - 1; d >= 0; d-- {
		out = append(out, d)
	}
	return out
}

package ics

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

const defaultMaxOccurrencesPerEvent = 500

const instanceKeyLayout = "20060102T150405Z"

// Expand turns parsed events into occurrences overlapping
// [RangeStart, RangeEnd]. RRULE series are expanded with EXDATEs removed
// and RECURRENCE-ID overrides applied. The result is sorted by start.
func Expand(events []ParsedEvent, cfg ExpandConfig) (ExpandResult, error) {
	var res ExpandResult
	if cfg.RangeEnd.Before(cfg.RangeStart) {
		return res, ErrInvalidRange
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.MaxOccurrencesPerEvent <= 0 {
		cfg.MaxOccurrencesPerEvent = defaultMaxOccurrencesPerEvent
	}

	overrides := make(map[string][]ParsedEvent)
	var bases []ParsedEvent
	for _, ev := range events {
		if ev.IsOverride() {
			overrides[ev.UID] = append(overrides[ev.UID], ev)
			continue
		}
		bases = append(bases, ev)
	}

	for _, ev := range bases {
		if ev.RawRRule == "" {
			if overlaps(ev.Start, ev.End, cfg.RangeStart, cfg.RangeEnd) {
				res.Occurrences = append(res.Occurrences, makeOccurrence(ev, ev.Start, ev.End, "", cfg.Location))
			}
			continue
		}

		occ, truncated, err := expandSeries(ev, overrides[ev.UID], cfg)
		if err != nil {
			res.InvalidRules = append(res.InvalidRules, ev.UID)
			continue
		}
		if truncated {
			res.Truncated = append(res.Truncated, ev.UID)
		}
		res.Occurrences = append(res.Occurrences, occ...)
	}

	sort.SliceStable(res.Occurrences, func(i, j int) bool {
		return res.Occurrences[i].Start.Before(res.Occurrences[j].Start)
	})
	return res, nil
}

func expandSeries(ev ParsedEvent, overrides []ParsedEvent, cfg ExpandConfig) ([]Occurrence, bool, error) {
	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		return nil, false, err
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	dur := ev.End.Sub(ev.Start)
	// Pull the range back by the duration so an instance already running at
	// RangeStart is kept.
	starts := set.Between(cfg.RangeStart.Add(-dur).In(ev.Start.Location()), cfg.RangeEnd.In(ev.Start.Location()), true)

	truncated := false
	if len(starts) > cfg.MaxOccurrencesPerEvent {
		starts = starts[:cfg.MaxOccurrencesPerEvent]
		truncated = true
	}

	out := make([]Occurrence, 0, len(starts))
	for _, s := range starts {
		key := s.UTC().Format(instanceKeyLayout)
		inst, start, end := ev, s, s.Add(dur)
		if o, ok := findOverride(overrides, s); ok {
			inst, start, end = o, o.Start, o.End
		}
		out = append(out, makeOccurrence(inst, start, end, key, cfg.Location))
	}
	return out, truncated, nil
}

func findOverride(overrides []ParsedEvent, start time.Time) (ParsedEvent, bool) {
	for _, o := range overrides {
		if o.Recurrence.Equal(start) {
			return o, true
		}
	}
	return ParsedEvent{}, false
}

func makeOccurrence(ev ParsedEvent, start, end time.Time, key string, loc *time.Location) Occurrence {
	return Occurrence{
		UID:         ev.UID,
		InstanceKey: key,
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		AllDay:      ev.AllDay,
		Start:       start.In(loc),
		End:         end.In(loc),
	}
}

func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !bEnd.Before(aStart)
}

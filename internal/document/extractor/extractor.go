package extractor

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/datemath"
	"productivity-calendar/pkg/llmprovider"
	pkgLog "productivity-calendar/pkg/log"
)

// Extractor turns document text into dated items. It prefers the text
// generator and falls back to a keyword and date-pattern scan.
type Extractor struct {
	l     pkgLog.Logger
	llm   llmprovider.TextGenerator
	dates *datemath.Parser
	cfg   Config
	now   func() time.Time
}

// New builds an Extractor. llm may be nil, in which case every run uses the
// keyword scan.
func New(l pkgLog.Logger, llm llmprovider.TextGenerator, dates *datemath.Parser, cfg Config) *Extractor {
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = DefaultMaxChars
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.DefaultEstimatedHours <= 0 {
		cfg.DefaultEstimatedHours = DefaultEstimatedHours
	}
	return &Extractor{
		l:     l,
		llm:   llm,
		dates: dates,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Now is the reference time that relative dates and year rollover resolve
// against, in the parser's location.
func (e *Extractor) Now() time.Time {
	return e.now().In(e.dates.Location())
}

// Truncate cuts text to the configured rune budget.
func (e *Extractor) Truncate(text string) (string, bool) {
	if utf8.RuneCountInString(text) <= e.cfg.MaxChars {
		return text, false
	}
	return string([]rune(text)[:e.cfg.MaxChars]), true
}

// Extract never fails: a generator error, timeout, cancellation or unusable
// answer switches to the keyword scan, and finding nothing is an empty result.
func (e *Extractor) Extract(ctx context.Context, text string, opts Options) Result {
	text, truncated := e.Truncate(text)
	now := e.Now()

	if strings.TrimSpace(text) == "" {
		return Result{Method: model.ExtractionMethodFallback, Truncated: truncated}
	}

	deadlines, err := e.fromLLM(ctx, text, opts, now)
	if err == nil && len(deadlines) > 0 {
		return Result{Deadlines: dedupe(deadlines), Method: model.ExtractionMethodLLM, Truncated: truncated}
	}
	if err != nil {
		e.l.Warnf(ctx, "extractor.Extract llm: %v", err)
	} else {
		e.l.Infof(ctx, "extractor.Extract: llm answer held no usable items, using keyword scan")
	}

	return Result{
		Deadlines: dedupe(e.fallback(text, opts, now)),
		Method:    model.ExtractionMethodFallback,
		Truncated: truncated,
	}
}

func (e *Extractor) fromLLM(ctx context.Context, text string, opts Options, now time.Time) ([]Deadline, error) {
	if e.llm == nil {
		return nil, fmt.Errorf("%w: no provider configured", ErrExternalServiceUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalServiceUnavailable, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	raw, err := e.llm.GenerateText(callCtx, systemPrompt, buildPrompt(text, opts, now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalServiceUnavailable, err)
	}

	items := parseItems(raw)
	out := make([]Deadline, 0, len(items))
	for _, it := range items {
		d, ok := e.toDeadline(it, now)
		if !ok {
			e.l.Debugf(ctx, "extractor.fromLLM: skip %q, unreadable date %q", it.Title, it.dateText())
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (e *Extractor) toDeadline(it item, now time.Time) (Deadline, bool) {
	at, allDay, err := e.dates.ParseDate(it.dateText(), now)
	if err != nil {
		return Deadline{}, false
	}
	if allDay {
		at = e.dates.EndOfDay(at)
	}

	est := float64(it.EstimatedHours)
	if est <= 0 {
		est = e.cfg.DefaultEstimatedHours
	}
	return Deadline{
		Title:          truncateRunes(strings.TrimSpace(it.Title), maxTitleRunes),
		Date:           at,
		AllDay:         allDay,
		Category:       ParseCategory(it.Type),
		Description:    truncateRunes(strings.TrimSpace(it.Description), maxDescriptionRunes),
		EstimatedHours: est,
	}, true
}

// dedupe keeps the first record per title and calendar day.
func dedupe(in []Deadline) []Deadline {
	seen := make(map[string]bool, len(in))
	out := make([]Deadline, 0, len(in))
	for _, d := range in {
		key := strings.ToLower(d.Title) + "|" + d.Date.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}

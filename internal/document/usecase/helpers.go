package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
	"unicode/utf8"

	"productivity-calendar/internal/document/extractor"
	"productivity-calendar/internal/model"
	"productivity-calendar/internal/task"
)

// extract runs the pipeline, reusing a cached result for identical input.
// Only generator results are cached so a later run can still reach the model
// after a keyword-scan answer.
func (uc *implUseCase) extract(ctx context.Context, text string, opts extractor.Options) extractor.Result {
	if uc.cache == nil {
		return uc.extractor.Extract(ctx, text, opts)
	}

	key := cacheKey(uc.extractor, text, opts, uc.extractor.Now())
	if raw, ok, err := uc.cache.Get(ctx, key); err != nil {
		uc.l.Warnf(ctx, "uc.extract cache.Get: %v", err)
	} else if ok {
		var res extractor.Result
		if err := json.Unmarshal(raw, &res); err == nil {
			uc.l.Debugf(ctx, "uc.extract: cache hit %s", key[:12])
			return res
		}
	}

	res := uc.extractor.Extract(ctx, text, opts)
	if res.Method != model.ExtractionMethodLLM {
		return res
	}
	raw, err := json.Marshal(res)
	if err != nil {
		uc.l.Warnf(ctx, "uc.extract marshal: %v", err)
		return res
	}
	if err := uc.cache.Set(ctx, key, raw); err != nil {
		uc.l.Warnf(ctx, "uc.extract cache.Set: %v", err)
	}
	return res
}

// cacheKey covers the reference day too: the prompt states today's date and
// dates without a year resolve relative to it.
func cacheKey(ex *extractor.Extractor, text string, opts extractor.Options, ref time.Time) string {
	truncated, _ := ex.Truncate(text)
	h := sha256.New()
	h.Write([]byte(opts.Context))
	h.Write([]byte{0})
	if opts.CourseStart != nil {
		h.Write([]byte(opts.CourseStart.UTC().Format(time.RFC3339)))
	}
	h.Write([]byte{0})
	h.Write([]byte(ref.Format(time.DateOnly)))
	h.Write([]byte{0})
	h.Write([]byte(truncated))
	return "extract:" + hex.EncodeToString(h.Sum(nil))
}

func toBulkInput(res extractor.Result, source model.SourceType, file string) task.CreateBulkInput {
	in := task.CreateBulkInput{
		Tasks:            make([]task.CreateInput, 0, len(res.Deadlines)),
		SourceType:       source,
		SourceFile:       file,
		ExtractionMethod: res.Method,
	}
	for _, d := range res.Deadlines {
		deadline := d.Date
		in.Tasks = append(in.Tasks, task.CreateInput{
			Title:          d.Title,
			Description:    d.Description,
			Deadline:       &deadline,
			EstimatedHours: d.EstimatedHours,
			Priority:       model.PriorityMedium,
			TaskType:       d.Category.TaskType(),
		})
	}
	return in
}

func preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n]) + "..."
}

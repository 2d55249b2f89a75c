package extractor

import (
	"fmt"
	"strings"
	"time"
)

const systemPrompt = "You are an expert at extracting deadline information from academic and professional documents. Answer with JSON only."

func buildPrompt(text string, opts Options, now time.Time) string {
	kind := opts.Context
	if kind == "" {
		kind = contextSyllabus
	}

	var hints strings.Builder
	fmt.Fprintf(&hints, "Today is %s.", now.Format("2006-01-02"))
	if opts.CourseStart != nil {
		fmt.Fprintf(&hints, " The course starts on %s; resolve \"Week N\" relative to it.", opts.CourseStart.Format("2006-01-02"))
	}

	return fmt.Sprintf(`Analyze the following %s and extract all deadlines, assignments, exams, interviews and other dated items.
%s

Return a JSON array. Each element must have exactly these keys:
- "title": short name of the item
- "date": ISO-8601 date (YYYY-MM-DD) or date-time
- "type": one of assignment, exam, quiz, presentation, paper, deadline, reading, project, interview
- "description": one sentence
- "estimated_hours": number of hours needed to prepare

Skip items without a date. Return [] when nothing is found.

Text:
%s`, kind, hints.String(), text)
}

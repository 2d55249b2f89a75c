package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"productivity-calendar/internal/calendarsync"
	"productivity-calendar/internal/document"
	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/gmail"
)

const scanConcurrency = 4

// ScanGmail only records the run on the integration row when it creates
// tasks, since that timestamp is the watermark the next import starts from.
func (uc *implUseCase) ScanGmail(ctx context.Context, sc model.Scope, input calendarsync.MailScanInput) (calendarsync.MailScanOutput, error) {
	if uc.mail == nil {
		return calendarsync.MailScanOutput{}, calendarsync.ErrMailNotConfigured
	}

	days := input.DaysBack
	if days == 0 {
		days = calendarsync.DefaultDaysBack
	}
	if days < 0 || days > calendarsync.MaxDaysBack {
		return calendarsync.MailScanOutput{}, calendarsync.ErrInvalidDaysBack
	}

	now := uc.now()
	var (
		msgs  []gmail.Message
		since = now.AddDate(0, 0, -days)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		msgs, err = uc.mail.ListMessages(gctx, gmail.ListRequest{
			Query:      fmt.Sprintf(calendarsync.MailQuery, days),
			MaxResults: calendarsync.MaxMessages,
		})
		return err
	})
	if input.CreateTasks {
		g.Go(func() error {
			last, err := uc.lastSync(gctx, sc, model.ProviderGmail)
			if err == nil && last.After(since) {
				since = last
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.ScanGmail fetch: %v", err)
		return calendarsync.MailScanOutput{}, err
	}

	var todo []gmail.Message
	out := calendarsync.MailScanOutput{Fetched: len(msgs)}
	for _, m := range msgs {
		if input.CreateTasks && !m.Received.IsZero() && !m.Received.After(since) {
			out.Skipped++
			continue
		}
		todo = append(todo, m)
	}

	results := make([]calendarsync.MailResult, len(todo))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(scanConcurrency)
	for i, m := range todo {
		eg.Go(func() error {
			res, err := uc.documents.ParseText(ectx, sc, document.ParseTextInput{
				Text:       mailText(m),
				Context:    calendarsync.MailContext,
				Source:     model.SourceTypeEmail,
				SourceFile: "gmail:" + m.ID,
				DryRun:     !input.CreateTasks,
			})
			if err != nil {
				return fmt.Errorf("message %s: %w", m.ID, err)
			}
			results[i] = calendarsync.MailResult{
				MessageID: m.ID,
				Subject:   m.Subject,
				From:      m.From,
				Received:  m.Received,
				Deadlines: res.Deadlines,
				Tasks:     res.Tasks,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.ScanGmail documents.ParseText: %v", err)
		return calendarsync.MailScanOutput{}, err
	}

	out.Scanned = len(todo)
	out.Messages = []calendarsync.MailResult{}
	for _, r := range results {
		if len(r.Deadlines) == 0 {
			continue
		}
		out.TasksCreated += len(r.Tasks)
		out.Messages = append(out.Messages, r)
	}

	if input.CreateTasks {
		uc.touch(ctx, sc, model.ProviderGmail, now)
	}
	uc.l.Infof(ctx, "uc.ScanGmail: fetched=%d scanned=%d skipped=%d with_deadlines=%d tasks=%d",
		out.Fetched, out.Scanned, out.Skipped, len(out.Messages), out.TasksCreated)
	return out, nil
}

// mailText puts the subject first since it often carries the only date.
func mailText(m gmail.Message) string {
	body := strings.TrimSpace(m.Body)
	if body == "" {
		body = m.Snippet
	}
	return "Subject: " + m.Subject + "\n\n" + body
}

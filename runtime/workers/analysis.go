package workers

import (
	"context"
	"emotion-lab/contract"
	"emotion-lab/domain/event"
	"emotion-lab/errors"
	"emotion-lab/language"
	"emotion-lab/services"
	stderrors "errors"
	"log/slog"
)

var _ contract.Worker = (*AnalysisWorker)(nil)

// AnalysisWorker takes received messages from the inbox, runs them through
// the analyzer service and publishes the outcome.
type AnalysisWorker struct {
	service services.IAnalyzerService
	inbox   <-chan event.Event
	events  chan<- event.Event
	log     *slog.Logger
}

func NewAnalysisWorker(service services.IAnalyzerService,
	inbox <-chan event.Event,
	events chan<- event.Event, log *slog.Logger) *AnalysisWorker {
	return &AnalysisWorker{service: service, inbox: inbox, events: events, log: log}
}

func (w *AnalysisWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.inbox:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			msg, ok := e.Payload.(event.MessageReceived)
			if !ok {
				w.log.Debug("Ignoring event", "type", e.Type)
				continue
			}
			out, ok := w.process(ctx, msg)
			if !ok {
				continue
			}
			select {
			case <-ctx.Done():
				w.log.Debug("Stopping worker")
				return ctx.Err()
			case w.events <- out:
			}
		}
	}
}

// process returns false when the message was already analyzed and nothing is published.
func (w *AnalysisWorker) process(ctx context.Context, msg event.MessageReceived) (event.Event, bool) {
	outcome, err := w.service.Process(ctx, services.AnalyzeRequest{
		MessageID: msg.ID,
		ChatID:    msg.ChatID,
		Author:    msg.Author,
		Content:   msg.Content,
		At:        msg.At,
	})
	if stderrors.Is(err, errors.ErrDuplicateAnalysis) {
		return event.Event{}, false
	}
	if err != nil {
		w.log.Error("Analysis failed", "chat_id", msg.ChatID, "message_id", msg.ID, "error", err)
		return event.New(event.AnalysisFailedType, event.AnalysisFailed{
			MessageID: msg.ID,
			ChatID:    msg.ChatID,
			Reason:    err.Error(),
		}), true
	}

	lang, confidence := language.Guess(msg.Content)
	record := outcome.Record
	w.log.Debug("Message analyzed",
		"chat_id", record.ChatID,
		"emotion", record.Result.DominantEmotion,
		"severity", record.Result.Severity,
		"lang", lang,
		"lang_confidence", confidence)

	return event.New(event.MessageAnalyzedType, event.MessageAnalyzed{
		MessageID:     record.MessageID,
		ChatID:        record.ChatID,
		Author:        record.Author,
		Dominant:      record.Result.DominantEmotion,
		Severity:      record.Result.Severity,
		Tier:          record.Tier,
		Alerts:        record.Alerts,
		CensoredWords: record.CensoredWords,
		Language:      lang,
		ReceivedAt:    msg.At,
	}), true
}

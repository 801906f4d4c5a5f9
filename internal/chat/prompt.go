package chat

import (
	"fmt"
	"strings"

	"github.com/aipulse/aipulse-cli/internal/ai"
	"github.com/aipulse/aipulse-cli/internal/dataset"
	"github.com/aipulse/aipulse-cli/internal/report"
	"github.com/aipulse/aipulse-cli/internal/utils"
)

const systemPrompt = "You are a data analyst answering questions about an AI-perception survey. " +
	"Answer only from the survey context provided; say so when the data cannot answer the question."

// PromptOptions bounds what goes into one completion request.
type PromptOptions struct {
	// HistoryWindow is the number of most recent exchanges included.
	HistoryWindow int
	// PreviewRows bounds the filtered-data preview embedded in the prompt.
	PreviewRows int
	// TokenLimit truncates the assembled context when the estimate exceeds it.
	TokenLimit int
}

// DefaultPromptOptions mirror the config defaults.
func DefaultPromptOptions() PromptOptions {
	return PromptOptions{HistoryWindow: 6, PreviewRows: 20, TokenLimit: 6000}
}

// BuildMessages assembles the completion messages for one question: a system
// role, the survey context (summary plus bounded preview of the filtered
// dataset), the bounded chat history, and the question itself. The question
// text travels as message content, never interpolated into any query.
func BuildMessages(ds *dataset.Dataset, sess *Session, question string, opt PromptOptions) []ai.Message {
	if opt.HistoryWindow <= 0 {
		opt.HistoryWindow = DefaultPromptOptions().HistoryWindow
	}
	if opt.PreviewRows <= 0 {
		opt.PreviewRows = DefaultPromptOptions().PreviewRows
	}

	var b strings.Builder
	b.WriteString("[SURVEY CONTEXT]\n")
	b.WriteString(report.Summary(ds, 0))
	b.WriteString("\n[FILTERED DATA PREVIEW]\n")
	b.WriteString(report.Preview(ds, opt.PreviewRows))
	context := b.String()
	if opt.TokenLimit > 0 && utils.CountTokens(context) > opt.TokenLimit {
		context = utils.TruncateToTokenLimit(context, opt.TokenLimit)
	}

	msgs := []ai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "system", Content: context},
	}
	for _, ex := range sess.Recent(opt.HistoryWindow) {
		if ex.Failed {
			continue
		}
		msgs = append(msgs,
			ai.Message{Role: "user", Content: ex.Question},
			ai.Message{Role: "assistant", Content: ex.Answer},
		)
	}
	msgs = append(msgs, ai.Message{Role: "user", Content: question})
	return msgs
}

// FormatAnswerError renders a service failure the way it is shown in place of
// an answer.
func FormatAnswerError(err error) string {
	return fmt.Sprintf("(no answer: %v)", err)
}

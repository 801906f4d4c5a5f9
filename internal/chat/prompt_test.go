package chat_test

import (
	"strings"
	"testing"

	"github.com/aipulse/aipulse-cli/internal/chat"
	"github.com/aipulse/aipulse-cli/internal/dataset"
	"github.com/aipulse/aipulse-cli/internal/source"
)

func promptDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Build(&source.Table{
		Name:    "survey.csv",
		Columns: []string{"AGE_RANGE", "TRUST_AI", "AI_USAGE_RATING"},
		Rows: [][]string{
			{"18-24", "yes", "4"},
			{"25-34", "no", "2"},
		},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ds
}

func TestBuildMessagesShape(t *testing.T) {
	ds := promptDataset(t)
	sess := chat.NewSession(t.TempDir())
	sess.Append("old question about trust", "old answer", false)
	sess.Append("failed question about ai", "(no answer: boom)", true)

	msgs := chat.BuildMessages(ds, sess, "Do respondents trust AI?", chat.DefaultPromptOptions())

	if msgs[0].Role != "system" {
		t.Fatalf("first message role = %s", msgs[0].Role)
	}
	context := msgs[1].Content
	if !strings.Contains(context, "[SURVEY CONTEXT]") || !strings.Contains(context, "[FILTERED DATA PREVIEW]") {
		t.Fatalf("context missing sections:\n%s", context)
	}
	if !strings.Contains(context, "18-24") {
		t.Fatalf("preview rows missing from context")
	}

	last := msgs[len(msgs)-1]
	if last.Role != "user" || last.Content != "Do respondents trust AI?" {
		t.Fatalf("last message = %+v", last)
	}
	// History appears as user/assistant pairs; failed exchanges are skipped.
	var sawOld, sawFailed bool
	for _, m := range msgs[2 : len(msgs)-1] {
		if m.Content == "old question about trust" {
			sawOld = true
		}
		if m.Content == "failed question about ai" {
			sawFailed = true
		}
	}
	if !sawOld {
		t.Fatal("prior exchange missing from prompt")
	}
	if sawFailed {
		t.Fatal("failed exchange leaked into prompt")
	}
}

func TestBuildMessagesBoundsHistory(t *testing.T) {
	ds := promptDataset(t)
	sess := chat.NewSession(t.TempDir())
	for i := 0; i < 10; i++ {
		sess.Append("question about ai usage", "answer", false)
	}
	opt := chat.DefaultPromptOptions()
	opt.HistoryWindow = 3
	msgs := chat.BuildMessages(ds, sess, "and now?", opt)
	// 2 system + 3 history pairs + 1 question
	if got := len(msgs); got != 2+3*2+1 {
		t.Fatalf("messages = %d; want %d", got, 2+3*2+1)
	}
}

func TestBuildMessagesTokenLimitTruncates(t *testing.T) {
	ds := promptDataset(t)
	sess := chat.NewSession(t.TempDir())
	opt := chat.DefaultPromptOptions()
	opt.TokenLimit = 10
	msgs := chat.BuildMessages(ds, sess, "trust?", opt)
	if len(msgs[1].Content) > 10*4 {
		t.Fatalf("context not truncated: %d chars", len(msgs[1].Content))
	}
}

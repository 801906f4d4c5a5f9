package chat_test

import (
	"testing"

	"github.com/aipulse/aipulse-cli/internal/chat"
)

func TestSessionAppendRecentReset(t *testing.T) {
	sess := chat.NewSession(t.TempDir())
	sess.Append("q1", "a1", false)
	sess.Append("q2", "a2", false)
	sess.Append("q3", "(no answer: boom)", true)

	if len(sess.Exchanges) != 3 {
		t.Fatalf("exchanges = %d; want 3", len(sess.Exchanges))
	}
	recent := sess.Recent(2)
	if len(recent) != 2 || recent[0].Question != "q2" || recent[1].Question != "q3" {
		t.Fatalf("Recent(2) = %+v", recent)
	}
	if !recent[1].Failed {
		t.Fatal("failed exchange not marked")
	}
	if got := sess.Recent(0); len(got) != 3 {
		t.Fatalf("Recent(0) = %d exchanges; want all", len(got))
	}

	sess.Reset()
	if len(sess.Exchanges) != 0 {
		t.Fatalf("Reset left %d exchanges", len(sess.Exchanges))
	}
}

func TestSessionSaveLoad(t *testing.T) {
	dir := t.TempDir()
	sess := chat.NewSession(dir)
	sess.Source = "survey.csv"
	sess.Append("how many respondents trust ai?", "About half.", false)
	if err := sess.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := chat.LoadSession(dir)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if loaded.ID != sess.ID || loaded.Source != "survey.csv" {
		t.Fatalf("loaded = %+v", loaded)
	}
	if len(loaded.Exchanges) != 1 || loaded.Exchanges[0].Answer != "About half." {
		t.Fatalf("exchanges = %+v", loaded.Exchanges)
	}
}

func TestLoadSessionFreshWhenMissing(t *testing.T) {
	sess, err := chat.LoadSession(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if sess.ID == "" || len(sess.Exchanges) != 0 {
		t.Fatalf("fresh session = %+v", sess)
	}
}

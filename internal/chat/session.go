// Package chat holds the question-answering mode: the per-session exchange
// history, the topic-relevance gate, and the prompt builder. The language
// model itself lives behind the ai package.
package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/aipulse/aipulse-cli/internal/utils"
)

const sessionFileName = "session.json"

// Exchange is one question/answer pair. Failed calls are recorded too, with
// the error text as the answer and Failed set.
type Exchange struct {
	ID       string    `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Failed   bool      `json:"failed,omitempty"`
	AskedAt  time.Time `json:"asked_at"`
}

// Session is the append-only chat history for one analysis session.
type Session struct {
	ID        string     `json:"id"`
	Source    string     `json:"source"` // active data source, for display
	Exchanges []Exchange `json:"exchanges"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Not serialized: on-disk location of the session.json
	dir string `json:"-"`
}

// NewSession constructs an in-memory session. Call Save to persist.
func NewSession(dir string) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		dir:       dir,
	}
}

// LoadSession loads session.json from dir, or starts a fresh session when
// none exists yet.
func LoadSession(dir string) (*Session, error) {
	path := filepath.Join(dir, sessionFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewSession(dir), nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	s.dir = dir
	return &s, nil
}

// Append records one exchange. The history is append-only; clearing it is an
// explicit Reset.
func (s *Session) Append(question, answer string, failed bool) {
	s.Exchanges = append(s.Exchanges, Exchange{
		ID:       uuid.NewString(),
		Question: question,
		Answer:   answer,
		Failed:   failed,
		AskedAt:  time.Now(),
	})
	s.UpdatedAt = time.Now()
}

// Recent returns the last n exchanges in chronological order. n <= 0 returns
// the whole history.
func (s *Session) Recent(n int) []Exchange {
	if n <= 0 || n >= len(s.Exchanges) {
		return s.Exchanges
	}
	return s.Exchanges[len(s.Exchanges)-n:]
}

// Reset drops the history immediately. The session identity survives.
func (s *Session) Reset() {
	s.Exchanges = nil
	s.UpdatedAt = time.Now()
}

// Save writes session.json using atomic write.
func (s *Session) Save() error {
	if s.dir == "" {
		return errors.New("session directory not set")
	}
	if err := utils.EnsureDir(s.dir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	s.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(s)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(s.dir, sessionFileName), data)
}

package proxy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FallbackLog persists accepted submissions that could not reach the
// authority. Each kind gets its own append-only JSONL file so nothing a
// visitor sent is lost during an outage; operators replay the files once
// the authority is back.
type FallbackLog struct {
	dir string

	mu sync.Mutex
}

// NewFallbackLog prepares a log rooted at dir, creating it if needed.
func NewFallbackLog(dir string) (*FallbackLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create fallback directory: %w", err)
	}
	return &FallbackLog{dir: dir}, nil
}

type fallbackRecord struct {
	ID         string `json:"id"`
	ReceivedAt string `json:"received_at"`
	Payload    any    `json:"payload"`
}

// Append records a payload under the given kind and returns the record id.
func (l *FallbackLog) Append(kind string, payload any) (string, error) {
	record := fallbackRecord{
		ID:         uuid.NewString(),
		ReceivedAt: time.Now().UTC().Format(time.RFC3339),
		Payload:    payload,
	}
	line, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal fallback record: %w", err)
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	path := filepath.Join(l.dir, kind+".jsonl")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("open fallback log %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(line); err != nil {
		return "", fmt.Errorf("append fallback record: %w", err)
	}
	return record.ID, nil
}

// Path returns the file a kind is logged to.
func (l *FallbackLog) Path(kind string) string {
	return filepath.Join(l.dir, kind+".jsonl")
}

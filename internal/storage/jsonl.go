package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"swapScope/internal/model"
)

// JsonlHistory appends quote records to a JSONL file.
type JsonlHistory struct {
	path string
	mu   sync.Mutex
}

func NewJsonlHistory(path string) *JsonlHistory {
	return &JsonlHistory{path: path}
}

// AppendQuotes appends a batch of quote records as JSON lines.
func (s *JsonlHistory) AppendQuotes(quotes []model.QuoteRecord) error {
	if len(quotes) == 0 {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, record := range quotes {
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal quote record: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write quote record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush history: %w", err)
	}

	return nil
}

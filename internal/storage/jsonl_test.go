package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"swapScope/internal/model"
)

func TestAppendQuotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history", "quotes.jsonl")
	sink := NewJsonlHistory(path)

	record := model.QuoteRecord{
		QuotedAt:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		TokenIn:         "STX",
		TokenOut:        "USDA",
		SlippagePercent: 0.4,
		SwapQuote: model.SwapQuote{
			AmountIn:        10,
			AmountOut:       19.92,
			MinimumReceived: 19.3224,
			SpotPrice:       2,
		},
	}

	if err := sink.AppendQuotes([]model.QuoteRecord{record}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := sink.AppendQuotes([]model.QuoteRecord{record}); err != nil {
		t.Fatalf("second append failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer file.Close()

	lines := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var decoded model.QuoteRecord
		if err := json.Unmarshal(scanner.Bytes(), &decoded); err != nil {
			t.Fatalf("line %d not valid JSON: %v", lines+1, err)
		}
		if decoded.TokenIn != "STX" || decoded.AmountOut != 19.92 {
			t.Fatalf("record mismatch: %+v", decoded)
		}
		lines++
	}
	if lines != 2 {
		t.Fatalf("expected 2 lines, got %d", lines)
	}
}

func TestAppendQuotesEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.jsonl")
	sink := NewJsonlHistory(path)

	if err := sink.AppendQuotes(nil); err != nil {
		t.Fatalf("empty batch should be a no-op: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("empty batch must not create the file")
	}
}

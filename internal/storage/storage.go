package storage

import "swapScope/internal/model"

// QuoteSink is a sink for quote history records.
type QuoteSink interface {
	AppendQuotes(quotes []model.QuoteRecord) error
}

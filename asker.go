package kursdoc

import "context"

// Asker provides natural language question answering over crawled
// course and program records.
type Asker interface {
	// Ask answers a natural language question. Returns ENOTFOUND when
	// no documents are available to ground the answer.
	Ask(ctx context.Context, question string) (string, error)
}

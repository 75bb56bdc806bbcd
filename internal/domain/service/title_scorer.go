package service

import (
	"context"
	"encoding/json"
)

// TitleScorer evaluates a title with an external scoring program.
type TitleScorer interface {
	// Score returns the single JSON value produced by the scorer for title.
	Score(ctx context.Context, title string) (json.RawMessage, error)
}

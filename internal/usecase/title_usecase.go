package usecase

import (
	"context"
	"encoding/json"
)

// CheckTitleInput carries the title to score.
type CheckTitleInput struct {
	Title string `query:"title" validate:"required"`
}

// CheckTitleOutput carries the scorer's verdict unchanged.
type CheckTitleOutput struct {
	Feedback json.RawMessage
}

// TitleUsecase forwards titles to the external scorer.
type TitleUsecase interface {
	CheckTitle(ctx context.Context, input *CheckTitleInput) (*CheckTitleOutput, error)
}

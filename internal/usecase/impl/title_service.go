package impl

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"

	deliverycontext "titlecheck/internal/delivery/context"
	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/domain/service"
	"titlecheck/internal/errors"
	"titlecheck/internal/usecase"
)

type titleService struct {
	scorer   service.TitleScorer
	validate *validator.Validate
	logger   *slog.Logger
}

// TitleServiceParams holds dependencies for TitleService, injected by Fx.
type TitleServiceParams struct {
	fx.In

	Scorer   service.TitleScorer
	Validate *validator.Validate
	Logger   *slog.Logger
}

func NewTitleService(params TitleServiceParams) usecase.TitleUsecase {
	return &titleService{
		scorer:   params.Scorer,
		validate: params.Validate,
		logger:   params.Logger,
	}
}

// CheckTitle returns the scorer's JSON output for the title.
func (srv *titleService) CheckTitle(ctx context.Context, input *usecase.CheckTitleInput) (*usecase.CheckTitleOutput, error) {
	if input == nil || srv.validate.StructCtx(ctx, input) != nil {
		return nil, errors.WithStack(domainerrors.ErrTitleRequired)
	}

	feedback, err := srv.scorer.Score(ctx, input.Title)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Title check failed",
			slog.Int("titleLength", len(input.Title)),
			slog.Any("error", err))

		return nil, err
	}

	return &usecase.CheckTitleOutput{Feedback: feedback}, nil
}

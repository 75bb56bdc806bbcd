package impl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/errors"
	mockSvc "titlecheck/internal/mocks/service"
	"titlecheck/internal/usecase"
)

func createTestTitleService(t *testing.T) (usecase.TitleUsecase, *mockSvc.MockTitleScorer) {
	scorer := mockSvc.NewMockTitleScorer(t)

	return NewTitleService(TitleServiceParams{
		Scorer:   scorer,
		Validate: NewValidator(),
		Logger:   newDiscardLogger(),
	}), scorer
}

func TestTitleService_CheckTitle_Success(t *testing.T) {
	svc, scorer := createTestTitleService(t)

	ctx := context.Background()
	scorer.EXPECT().Score(ctx, "Deep Residual Learning").Return(json.RawMessage(`{"score":0.91}`), nil)

	output, err := svc.CheckTitle(ctx, &usecase.CheckTitleInput{Title: "Deep Residual Learning"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"score":0.91}`, string(output.Feedback))
}

func TestTitleService_CheckTitle_Missing(t *testing.T) {
	svc, scorer := createTestTitleService(t)

	_, err := svc.CheckTitle(context.Background(), &usecase.CheckTitleInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrTitleRequired))

	_, err = svc.CheckTitle(context.Background(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrTitleRequired))

	scorer.AssertNotCalled(t, "Score", mock.Anything, mock.Anything)
}

func TestTitleService_CheckTitle_ScorerFailure(t *testing.T) {
	svc, scorer := createTestTitleService(t)

	ctx := context.Background()
	scorer.EXPECT().Score(ctx, "x").Return(nil, errors.Wrap(domainerrors.ErrScorerOutput, "parse scorer output"))

	_, err := svc.CheckTitle(ctx, &usecase.CheckTitleInput{Title: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrScorerOutput))
}

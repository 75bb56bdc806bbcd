package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"titlecheck/internal/delivery/api/response"
	deliverycontext "titlecheck/internal/delivery/context"
	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/errors"
	"titlecheck/internal/usecase"
)

// TitleHandler serves the title check endpoint.
type TitleHandler struct {
	uc     usecase.TitleUsecase
	logger *slog.Logger
}

func NewTitleHandler(uc usecase.TitleUsecase, logger *slog.Logger) *TitleHandler {
	return &TitleHandler{
		uc:     uc,
		logger: logger,
	}
}

// Check forwards the title query parameter to the scorer.
func (h *TitleHandler) Check(c echo.Context) error {
	input := &usecase.CheckTitleInput{Title: c.QueryParam("title")}

	output, err := h.uc.CheckTitle(c.Request().Context(), input)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return response.CheckError(c, appErr)
		}

		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Title check failed", slog.Any("error", err))

		return response.CheckError(c, domainerrors.ErrScorerExecution)
	}

	return response.Feedback(c, output.Feedback)
}

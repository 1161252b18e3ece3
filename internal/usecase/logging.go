package usecase

import (
	"context"
	"log/slog"

	"hotel-registry/internal/pkg/errs"
	"hotel-registry/internal/usecase/readmodel"
)

// logOutcome emits one status line per operation: Info when it went through,
// Warn with the error kind when it was rejected.
func logOutcome(ctx context.Context, logger *slog.Logger, op string, err error, attrs ...slog.Attr) {
	if err == nil {
		logger.LogAttrs(ctx, slog.LevelInfo, op+" succeeded", attrs...)
		return
	}
	attrs = append(attrs,
		slog.String("kind", string(errs.KindOf(err))),
		slog.String("error", err.Error()),
	)
	logger.LogAttrs(ctx, slog.LevelWarn, op+" rejected", attrs...)
}

// logReport treats a partially applied operation as rejected so its failures
// reach the log.
func logReport(ctx context.Context, logger *slog.Logger, op string, report *readmodel.Report, err error, attrs ...slog.Attr) {
	if err == nil && report != nil && report.HasFailures() {
		err = report.Err()
	}
	logOutcome(ctx, logger, op, err, attrs...)
}

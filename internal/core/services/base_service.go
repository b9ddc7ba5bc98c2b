package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fund_balance_app/internal/apperrors"
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	"github.com/SscSPs/fund_balance_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// RequireAdmin returns apperrors.ErrForbidden unless actor is an admin.
func (s *BaseService) RequireAdmin(ctx context.Context, actor domain.Identity, action string) error {
	if actor.IsAdmin() {
		return nil
	}
	s.LogWarn(ctx, "Non-admin attempted admin action",
		slog.Int64("actor_id", actor.AccountID),
		slog.String("action", action))
	return fmt.Errorf("%s requires admin role: %w", action, apperrors.ErrForbidden)
}

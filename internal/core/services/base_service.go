package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/money_lending_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_lending_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now returns the current time; tests may replace it.
	Now func() time.Time

	// Cache is optional. Services that mutate the event set bump its version.
	Cache portsrepo.BalanceCache
}

// ServiceOption is a functional option shared by all services
type ServiceOption func(*BaseService)

// WithBalanceCache enables version-keyed balance caching.
func WithBalanceCache(cache portsrepo.BalanceCache) ServiceOption {
	return func(s *BaseService) {
		s.Cache = cache
	}
}

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Now = now
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{Now: time.Now}
	for _, option := range options {
		option(&base)
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func (s *BaseService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// bumpVersion invalidates cached balances after a mutation.
// A failed bump is logged, not returned; stale entries expire with their TTL.
func (s *BaseService) bumpVersion(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Bump(ctx); err != nil {
		s.LogError(ctx, err, "Failed to bump balance cache version")
	}
}

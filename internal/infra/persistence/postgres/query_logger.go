package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"storefront/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	wishlistItemsTable = "wishlist_items"
	defaultSlowQuery   = 200 * time.Millisecond
)

var statementTablePattern = regexp.MustCompile(`(?i)\b(?:FROM|INTO|UPDATE)\s+"?([a-z_][a-z0-9_]*)"?`)

// queryLogger sends gorm statements to slog, tagged with the table they touched.
type queryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
	slow   time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &queryLogger{logger: base, level: logger.Warn, slow: defaultSlowQuery}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Store != nil && cfg.Store.SlowQuery > 0 {
		l.slow = cfg.Store.SlowQuery
	}

	return l
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "Database notice", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}
	// A missing cart pointer is an answer, not a failure.
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = nil
	}

	elapsed := time.Since(begin)
	slow := l.slow > 0 && elapsed > l.slow
	if err == nil && !slow && l.level < logger.Info {
		return
	}

	sql, rows := fc()
	table := statementTable(sql)
	attrs := []slog.Attr{
		slog.String("table", table),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}

	switch {
	case err != nil && table == wishlistItemsTable && isUniqueConstraintViolation(err):
		// Double adds race on the wishlist; the repository reports them as duplicates.
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Wishlist item already stored", attrs...)
	case err != nil && l.level >= logger.Error:
		l.logger.LogAttrs(ctx, slog.LevelError, "Database statement failed", append(attrs, slog.String("error", err.Error()))...)
	case slow && l.level >= logger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow database statement", append(attrs, slog.Duration("threshold", l.slow))...)
	case err == nil && l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "Database statement", attrs...)
	}
}

// statementTable names the first table a statement reads or writes.
func statementTable(sql string) string {
	match := statementTablePattern.FindStringSubmatch(sql)
	if match == nil {
		return "unknown"
	}

	return match[1]
}

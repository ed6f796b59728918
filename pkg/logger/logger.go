// Package logger provides the structured, levelled logger for the shop,
// built on log/slog. Handlers write JSON in production and human-readable
// text otherwise; an optional asynchronous MongoDB sink can be attached at
// boot (see EnableMongoSink).
//
// Request handlers get a pre-tagged logger via WithCtx:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order placed", "order_id", order.ID)
//	// → time=... level=INFO msg="order placed" request_id=a1b2c3d4 order_id=7
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/devansh742005/under-the-hoodies/config"
)

// L is the base logger. Prefer WithCtx inside request handlers.
var L *slog.Logger

var mongoSink *MongoHandler

func init() {
	L = slog.New(baseHandler())
	slog.SetDefault(L)
}

func baseHandler() slog.Handler {
	switch config.AppEnv() {
	case "production", "prod":
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// EnableMongoSink attaches the MongoDB log sink alongside the stdout
// handler. Call once at boot when LOG_MONGO_URI is configured; pair with
// CloseMongoSink on shutdown.
func EnableMongoSink(uri, db, collection string) error {
	h, err := NewMongoHandler(uri, db, collection)
	if err != nil {
		return err
	}
	mongoSink = h
	L = slog.New(NewMultiHandler(baseHandler(), h))
	slog.SetDefault(L)
	return nil
}

// CloseMongoSink flushes and disconnects the Mongo sink, if enabled.
func CloseMongoSink() {
	if mongoSink != nil {
		mongoSink.Close()
		mongoSink = nil
	}
}

// ─── Context-aware logger ─────────────────────────────────────────────────────

type ctxKey struct{}

// WithCtx returns the per-request logger stored by the logging middleware,
// or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Inject stores a pre-tagged *slog.Logger in ctx. Called by the logging
// middleware; application code rarely needs it.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─── Short-hand helpers ───────────────────────────────────────────────────────

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }

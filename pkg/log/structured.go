package log

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StructuredLogger is a thin, named wrapper around the global zap logger
// used by the service layer to trace multi-step operations.
type StructuredLogger struct {
	name string
}

// NewDebugLogger returns a structured logger named after a service.
// The underlying logger is resolved lazily from zap's globals so services
// constructed before InitLog still log correctly.
func NewDebugLogger(name string) *StructuredLogger {
	return &StructuredLogger{name: name}
}

// Operation starts building a tracer for one logical operation. Fields
// added before Build are attached to every event of the operation.
func (l *StructuredLogger) Operation(name string) *OperationBuilder {
	return &OperationBuilder{
		logger: l,
		name:   name,
		fields: make([]zap.Field, 0, 8),
	}
}

type OperationBuilder struct {
	logger *StructuredLogger
	name   string
	fields []zap.Field
}

func (b *OperationBuilder) WithString(key, value string) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *OperationBuilder) WithStringPtr(key string, value *string) *OperationBuilder {
	if value != nil {
		b.fields = append(b.fields, zap.String(key, *value))
	}
	return b
}

func (b *OperationBuilder) WithInt(key string, value int) *OperationBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *OperationBuilder) WithFloat(key string, value float64) *OperationBuilder {
	b.fields = append(b.fields, zap.Float64(key, value))
	return b
}

func (b *OperationBuilder) WithBool(key string, value bool) *OperationBuilder {
	b.fields = append(b.fields, zap.Bool(key, value))
	return b
}

func (b *OperationBuilder) WithUUID(key string, value uuid.UUID) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value.String()))
	return b
}

func (b *OperationBuilder) Build() *OperationTracer {
	return &OperationTracer{
		logger:  zap.L().Named(b.logger.name),
		name:    b.name,
		fields:  b.fields,
		started: time.Now(),
	}
}

// OperationTracer emits the events of one operation: intermediate steps,
// the terminal success or the terminal error.
type OperationTracer struct {
	logger  *zap.Logger
	name    string
	fields  []zap.Field
	started time.Time
}

func (t *OperationTracer) Step(step string) *EventBuilder {
	return t.event(zapcore.DebugLevel, "operation step", zap.String("step", step))
}

func (t *OperationTracer) Success() *EventBuilder {
	return t.event(zapcore.InfoLevel, "operation succeeded", zap.Duration("elapsed", time.Since(t.started)))
}

func (t *OperationTracer) Error(err error) *EventBuilder {
	return t.event(zapcore.ErrorLevel, "operation failed", zap.Error(err), zap.Duration("elapsed", time.Since(t.started)))
}

func (t *OperationTracer) event(level zapcore.Level, msg string, extra ...zap.Field) *EventBuilder {
	fields := make([]zap.Field, 0, len(t.fields)+len(extra)+1)
	fields = append(fields, zap.String("operation", t.name))
	fields = append(fields, t.fields...)
	fields = append(fields, extra...)
	return &EventBuilder{
		logger: t.logger,
		level:  level,
		msg:    msg,
		fields: fields,
	}
}

// EventBuilder accumulates per-event fields; Log emits the event.
type EventBuilder struct {
	logger *zap.Logger
	level  zapcore.Level
	msg    string
	fields []zap.Field
}

func (e *EventBuilder) WithString(key, value string) *EventBuilder {
	e.fields = append(e.fields, zap.String(key, value))
	return e
}

func (e *EventBuilder) WithInt(key string, value int) *EventBuilder {
	e.fields = append(e.fields, zap.Int(key, value))
	return e
}

func (e *EventBuilder) WithFloat(key string, value float64) *EventBuilder {
	e.fields = append(e.fields, zap.Float64(key, value))
	return e
}

func (e *EventBuilder) WithBool(key string, value bool) *EventBuilder {
	e.fields = append(e.fields, zap.Bool(key, value))
	return e
}

func (e *EventBuilder) WithUUID(key string, value uuid.UUID) *EventBuilder {
	e.fields = append(e.fields, zap.String(key, value.String()))
	return e
}

func (e *EventBuilder) Log() {
	e.logger.Log(e.level, e.msg, e.fields...)
}

package trace

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// The context key type stays unexported so callers go through the
// helpers below.
type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info carries the tracing state of one inbound HTTP request.
// RequestID is unique per request; spanSeq increments 1,2,3,... for
// every outbound call made while handling it.
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID returns a random ID suitable for request tracing.
func GenerateID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		// keep tracing usable even if the source of randomness fails
		return time.Now().UTC().Format("20060102T150405.000000000")
	}
	return id.String()
}

// WithRequestAndSpan returns a context carrying the request ID and an
// initial span value (usually 0).
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext reads the request ID stored in the context.
func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID returns the current span sequence value as a string
// without incrementing it.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID increments the span sequence within the same request and
// returns (requestID, spanID). Successive outbound calls within one
// request therefore get span IDs 1,2,3,...
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		// fallback for calls made outside the middleware
		reqID := GenerateID()
		return reqID, "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}

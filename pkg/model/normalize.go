package model

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const (
	// UnknownMessage is used when no error message can be extracted.
	UnknownMessage = "Unknown error"
	// StackUnavailable marks records without a usable stack trace.
	StackUnavailable = "unavailable"
)

// stackTracer is implemented by errors that carry their own stack trace text.
type stackTracer interface {
	StackTrace() string
}

// Normalize maps any of the accepted input variants to an ErrorRecord:
// error, string, ErrorRecord or *ErrorRecord. Anything else is stringified
// with fmt.Sprint. The returned record always has a non-empty Message and a
// non-empty StackTrace.
func Normalize(input interface{}) ErrorRecord {
	switch v := input.(type) {
	case nil:
		return sanitize(ErrorRecord{})
	case ErrorRecord:
		return sanitize(v)
	case *ErrorRecord:
		if v == nil {
			return sanitize(ErrorRecord{})
		}
		return sanitize(*v)
	case error:
		rec := ErrorRecord{
			Kind:    fmt.Sprintf("%T", v),
			Message: v.Error(),
		}
		if st, ok := v.(stackTracer); ok {
			rec.StackTrace = st.StackTrace()
		}
		return sanitize(rec)
	case string:
		return sanitize(ErrorRecord{Message: v})
	default:
		return sanitize(ErrorRecord{
			Kind:    fmt.Sprintf("%T", v),
			Message: fmt.Sprint(v),
		})
	}
}

// FromRecovered builds an ErrorRecord from a recovered panic value, capturing
// the current goroutine's stack. Call it inside a deferred recover block.
func FromRecovered(v interface{}) ErrorRecord {
	rec := Normalize(v)
	if rec.Kind == "" {
		rec.Kind = "panic"
	}
	rec.StackTrace = strings.TrimSpace(string(debug.Stack()))
	return rec
}

func sanitize(rec ErrorRecord) ErrorRecord {
	if strings.TrimSpace(rec.Message) == "" {
		rec.Message = UnknownMessage
	}
	if strings.TrimSpace(rec.StackTrace) == "" {
		rec.StackTrace = StackUnavailable
	}
	return rec
}

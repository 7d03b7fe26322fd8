package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Browser records a browser identity under the key "browser".
// If id is nil, it returns an empty Attr.
func Browser(id fmt.Stringer) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.String("browser", id.String())
}

// State records a gate state under the key "state".
func State(state string) slog.Attr {
	return slog.String("state", state)
}

// Module records a follow-on module name under the key "module".
func Module(name string) slog.Attr {
	return slog.String("module", name)
}

// URL records a requested URL under the key "url".
func URL(u string) slog.Attr {
	return slog.String("url", u)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

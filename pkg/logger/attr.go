package logger

import (
	"log/slog"
	"reflect"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Model records a model type under the key "model".
// If t is nil, it returns an empty Attr.
func Model(t reflect.Type) slog.Attr {
	if t == nil {
		return slog.Attr{}
	}
	return slog.String("model", t.String())
}

// Property records a property name under the key "property".
func Property(name string) slog.Attr {
	return slog.String("property", name)
}

// Marker records a constraint marker under the key "marker".
func Marker(m any) slog.Attr {
	return slog.Any("marker", m)
}

// RuleKind records a rule kind under the key "rule_kind".
func RuleKind(kind any) slog.Attr {
	return slog.Any("rule_kind", kind)
}

// Table records a storage table or collection under the key "table".
func Table(name string) slog.Attr {
	return slog.String("table", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the CLI command under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

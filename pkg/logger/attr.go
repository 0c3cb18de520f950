package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records the form field name under the key "field".
// If name is empty, it returns an empty Attr.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Event records the triggering event kind under the key "event".
// If kind is empty, it returns an empty Attr.
func Event(kind string) slog.Attr {
	if kind == "" {
		return slog.Attr{}
	}
	return slog.String("event", kind)
}

// Form records the form identifier under the key "form".
// If id is empty, it returns an empty Attr.
func Form(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("form", id)
}

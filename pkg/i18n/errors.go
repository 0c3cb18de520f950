package i18n

import "errors"

var (
	// ErrEmptyLanguageCode is returned when a translations map carries an empty language key.
	ErrEmptyLanguageCode = errors.New("empty language code found")

	// ErrNilTranslations is returned when a language maps to a nil translations map.
	ErrNilTranslations = errors.New("nil translations map for language")

	// ErrUnsupportedFormat is returned when no parser matches a file's extension.
	ErrUnsupportedFormat = errors.New("unsupported translation file format")

	// ErrParsingCancelled is returned when the context is done before parsing starts.
	ErrParsingCancelled = errors.New("translation parsing cancelled")

	// ErrFailedToParseYAML is returned when YAML content cannot be decoded.
	ErrFailedToParseYAML = errors.New("failed to parse YAML translations")

	// ErrFailedToParseJSON is returned when JSON content cannot be decoded.
	ErrFailedToParseJSON = errors.New("failed to parse JSON translations")

	// ErrNoTranslationsFound is returned when parsed content contains no languages.
	ErrNoTranslationsFound = errors.New("no translations found in content")
)

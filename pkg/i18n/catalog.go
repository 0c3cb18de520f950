package i18n

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// DefaultLanguage is used when no language is configured explicitly.
const DefaultLanguage = "en"

// Catalog holds validation message translations per language. Message keys
// are dot-separated paths into a nested map ("validation.min_length"), and
// message templates may carry named placeholders in the form %{name}.
type Catalog struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a requested language has no
// translations.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether a missing translation yields the key
// itself (true, the default) or an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(c *Catalog) { c.fallbackToKey = fallback }
}

// WithLogger sets the logger used for missing-translation diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.logger = log
		}
	}
}

// New creates a Catalog over already-parsed translations, keyed by language
// code.
func New(translations map[string]map[string]any, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		translations:  translations,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	for lang, messages := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if messages == nil {
			return nil, ErrNilTranslations
		}
	}

	return c, nil
}

// Load parses content with the parser matching filename's extension
// (YAML or JSON) and creates a Catalog from the result.
func Load(ctx context.Context, filename string, content []byte, opts ...Option) (*Catalog, error) {
	parser := NewParserForFile(filename)
	if parser == nil {
		return nil, ErrUnsupportedFormat
	}
	translations, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, err
	}
	return New(translations, opts...)
}

// SupportedLanguages returns the sorted language codes with translations.
func (c *Catalog) SupportedLanguages() []string {
	langs := make([]string, 0, len(c.translations))
	for lang := range c.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation checks if a translation exists for the given language and key.
func (c *Catalog) HasTranslation(lang, key string) bool {
	messages, ok := c.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(messages, key)
	return ok
}

// T translates key for lang, substituting named placeholders from key-value
// argument pairs:
//
//	// With "validation.min_length": "Must be at least %{min} characters."
//	msg := catalog.T("en", "validation.min_length", "min", "8")
//
// Lookup falls back to the default language, then to the key itself (unless
// disabled via WithFallbackToKey).
func (c *Catalog) T(lang, key string, args ...string) string {
	if messages, ok := c.translations[lang]; ok {
		if tmpl, ok := lookup(messages, key); ok {
			return interpolate(tmpl, args)
		}
	}

	if lang != c.defaultLang {
		if messages, ok := c.translations[c.defaultLang]; ok {
			if tmpl, ok := lookup(messages, key); ok {
				return interpolate(tmpl, args)
			}
		}
	}

	c.logger.Warn("missing translation", "lang", lang, "key", key)
	if c.fallbackToKey {
		return interpolate(key, args)
	}
	return ""
}

// lookup traverses a nested map using dot-separated keys and returns the
// string template at the leaf.
func lookup(messages map[string]any, key string) (string, bool) {
	current := messages
	parts := strings.Split(key, ".")

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			if !ok {
				return "", false
			}
			s, ok := val.(string)
			return s, ok
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			anyMap, isAnyMap := current[part].(map[any]any)
			if !isAnyMap {
				return "", false
			}
			next = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					next[ks] = v
				}
			}
		}
		current = next
	}

	return "", false
}

// paramRegex finds named parameters in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate substitutes %{name} placeholders from key-value argument
// pairs. Odd trailing arguments are ignored; unknown placeholders are kept
// verbatim.
func interpolate(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

package i18n

import "golang.org/x/text/language"

// Match picks the best supported language for the requested preferences
// (ordered most to least preferred), using BCP 47 matching. Unparseable
// entries on either side are skipped; when nothing matches, the first
// supported language wins.
func Match(supported []string, requested ...string) string {
	if len(supported) == 0 {
		return ""
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, s)
	}
	if len(tags) == 0 {
		return supported[0]
	}

	desired := make([]language.Tag, 0, len(requested))
	for _, r := range requested {
		if tag, err := language.Parse(r); err == nil {
			desired = append(desired, tag)
		}
	}

	matcher := language.NewMatcher(tags)
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return codes[0]
	}
	return codes[idx]
}

// Match picks the best of the catalog's supported languages for the
// requested preferences.
func (c *Catalog) Match(requested ...string) string {
	return Match(c.SupportedLanguages(), requested...)
}

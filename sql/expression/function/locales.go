package function

import (
	"io"
	"io/ioutil"
	"strings"

	"golang.org/x/text/language"
	errors "gopkg.in/src-d/go-errors.v1"
	yaml "gopkg.in/yaml.v2"
)

// ErrInvalidLocale is returned when a locale is malformed or has no entry in
// the separator table.
var ErrInvalidLocale = errors.NewKind("invalid locale: %s")

// Separators is the pair of characters a locale uses to render a number:
// the grouping separator placed every three digits of the integer part, and
// the decimal separator between integer and fractional parts.
type Separators struct {
	Grouping string `yaml:"grouping"`
	Decimal  string `yaml:"decimal"`
}

// defaultSeparators renders numbers the en_US way, which is also what FORMAT
// does with a NULL or empty locale.
var defaultSeparators = Separators{Grouping: ",", Decimal: "."}

// defaultLocales maps canonical locale identifiers to their separators. It is
// written once here and never mutated; custom tables are supplied through
// NewFormatWithLocales instead.
var defaultLocales = map[string]Separators{
	"en_us": {Grouping: ",", Decimal: "."},
	"en_gb": {Grouping: ",", Decimal: "."},
	"zh_cn": {Grouping: ",", Decimal: "."},
	"zh_tw": {Grouping: ",", Decimal: "."},
	"ja_jp": {Grouping: ",", Decimal: "."},
	"ko_kr": {Grouping: ",", Decimal: "."},
	"de_de": {Grouping: ".", Decimal: ","},
	"es_es": {Grouping: ".", Decimal: ","},
	"it_it": {Grouping: ".", Decimal: ","},
	"nl_nl": {Grouping: ".", Decimal: ","},
	"pt_br": {Grouping: ".", Decimal: ","},
	"fr_fr": {Grouping: " ", Decimal: ","},
	"ru_ru": {Grouping: " ", Decimal: ","},
	"sv_se": {Grouping: " ", Decimal: ","},
	"de_ch": {Grouping: "'", Decimal: "."},
	"it_ch": {Grouping: "'", Decimal: "."},
}

// canonicalLocale validates a locale identifier and normalizes it to the
// lowercase, underscore-separated form the tables are keyed by. Both en_US
// and en-US spellings are accepted.
func canonicalLocale(name string) (string, error) {
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return "", ErrInvalidLocale.New(name)
	}

	return strings.ToLower(strings.ReplaceAll(tag.String(), "-", "_")), nil
}

// lookupLocale resolves a locale identifier against the given table, or the
// built-in table when locales is nil.
func lookupLocale(locales map[string]Separators, name string) (Separators, error) {
	if name == "" {
		return defaultSeparators, nil
	}

	canonical, err := canonicalLocale(name)
	if err != nil {
		return Separators{}, err
	}

	if locales == nil {
		locales = defaultLocales
	}

	seps, ok := locales[canonical]
	if !ok {
		return Separators{}, ErrInvalidLocale.New(name)
	}
	return seps, nil
}

// LoadLocales reads a YAML document mapping locale identifiers to separator
// pairs, validating and canonicalizing every key. The result can be handed to
// NewFormatWithLocales.
func LoadLocales(r io.Reader) (map[string]Separators, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var parsed map[string]Separators
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	locales := make(map[string]Separators, len(parsed))
	for name, seps := range parsed {
		canonical, err := canonicalLocale(name)
		if err != nil {
			return nil, err
		}
		locales[canonical] = seps
	}

	return locales, nil
}

// Package i18n loads the embedded message catalogs used for every string the
// player sees. Catalogs are gettext .po files keyed by constant message IDs.
package i18n

import (
	"embed"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLang is used when a requested catalog does not exist.
const DefaultLang = "en"

//go:embed locales/*.po
var locales embed.FS

// Translator resolves message IDs for one language.
type Translator struct {
	po       *gotext.Po
	messages map[string]string
}

// New returns a translator for lang ("fr", "fr_FR", "en-GB" all work),
// falling back to English.
func New(lang string) *Translator {
	lang = normalize(lang)
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		data, _ = locales.ReadFile("locales/" + DefaultLang + ".po")
	}

	po := gotext.NewPo()
	po.Parse(data)

	messages := make(map[string]string)
	for id, tr := range po.GetDomain().GetTranslations() {
		if tr.IsTranslated() {
			messages[id] = tr.Get()
		}
	}
	return &Translator{po: po, messages: messages}
}

// Get returns the translation for id. Unknown IDs come back unchanged.
func (t *Translator) Get(id string) string {
	if msg, ok := t.messages[id]; ok {
		return msg
	}
	return id
}

// Getf formats the translation for id with args.
func (t *Translator) Getf(id string, args ...any) string {
	return fmt.Sprintf(t.Get(id), args...)
}

// Has reports whether the catalog translates id.
func (t *Translator) Has(id string) bool {
	return t.po.IsTranslated(id)
}

// Languages lists the embedded catalogs.
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return []string{DefaultLang}
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}

// Supported reports whether lang resolves to an embedded catalog.
func Supported(lang string) bool {
	return slices.Contains(Languages(), normalize(lang))
}

// normalize reduces a locale like "fr_FR.UTF-8" to "fr".
func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" {
		return DefaultLang
	}
	return lang
}

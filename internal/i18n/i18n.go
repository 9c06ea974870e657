package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Локализованные строки подсказки бейджа и ответов бота

//go:embed locales/*.yaml
var localesFS embed.FS

const DefaultLocale = "en"

// Catalog — строки одной локали с откатом на английскую
type Catalog struct {
	locale   string
	messages map[string]string
	fallback map[string]string
}

// Load — каталог для локали ("pt_BR", "pt-br" и "pt_BR.UTF-8" считаются одной)
func Load(locale string) (*Catalog, error) {
	name := normalize(locale)

	fallback, err := readLocale(DefaultLocale)
	if err != nil {
		return nil, err
	}
	if name == DefaultLocale {
		return &Catalog{locale: name, messages: fallback, fallback: fallback}, nil
	}

	messages, err := readLocale(name)
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q: %w", locale, err)
	}
	return &Catalog{locale: name, messages: messages, fallback: fallback}, nil
}

// MustLoad — для тестов и встроенных локалей
func MustLoad(locale string) *Catalog {
	c, err := Load(locale)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Locale() string { return c.locale }

// T — строка по ключу с подстановкой args; неизвестный ключ возвращается как есть
func (c *Catalog) T(key string, args ...any) string {
	msg, ok := c.messages[key]
	if !ok {
		msg, ok = c.fallback[key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Locales — встроенные локали
func Locales() []string {
	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(out)
	return out
}

func readLocale(name string) (map[string]string, error) {
	raw, err := localesFS.ReadFile(path.Join("locales", name+".yaml"))
	if err != nil {
		return nil, err
	}
	messages := make(map[string]string)
	if err := yaml.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("parse locale %s: %w", name, err)
	}
	return messages, nil
}

func normalize(locale string) string {
	l := strings.TrimSpace(locale)
	if i := strings.IndexByte(l, '.'); i >= 0 {
		l = l[:i]
	}
	l = strings.ReplaceAll(l, "-", "_")
	lang, region, hasRegion := strings.Cut(l, "_")
	lang = strings.ToLower(lang)
	if lang == "" {
		return DefaultLocale
	}
	if !hasRegion {
		return lang
	}
	return lang + "_" + strings.ToUpper(region)
}

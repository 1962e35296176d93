// Package locale localizes the CLI's own messages (prompts, errors, help
// accents). Translation content itself is never localized here; that is
// the remote API's job.
package locale

import (
	"embed"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Messages renders localized CLI messages with English fallback.
type Messages struct {
	localizer *i18n.Localizer
}

// New builds Messages for the given locale (e.g. "zh-CN"). Unparseable
// locales fall back to English.
func New(locale string) *Messages {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range []string{"active.en.toml", "active.zh.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			slog.Debug("locale: failed to load messages", slog.String("file", file), slog.String("error", err.Error()))
		}
	}
	return &Messages{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}
}

// FromEnv builds Messages from LC_ALL / LANG.
func FromEnv() *Messages {
	return New(envLocale())
}

// T renders the message identified by key. A missing key renders as the
// key itself so output never goes blank.
func (m *Messages) T(key string, data map[string]any) string {
	msg, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}
	return msg
}

// envLocale extracts a BCP 47 tag from POSIX locale variables, e.g.
// "zh_CN.UTF-8" becomes "zh-CN".
func envLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return "en"
}

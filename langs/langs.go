// Package langs maps user-supplied language identifiers onto the
// translation API's own language codes.
//
// The API does not use BCP 47: Japanese is "jp" rather than "ja", Korean is
// "kor", French is "fra", Traditional Chinese is "cht", and so on. Normalize
// accepts either form, passing API codes through unchanged and converting
// standard tags.
package langs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnsupported indicates a language the API cannot translate.
var ErrUnsupported = errors.New("unsupported language")

// Auto lets the API detect the source language.
const Auto = "auto"

// codes is the documented general-translation code set.
var codes = map[string]string{
	"auto": "detect automatically",
	"zh":   "Chinese (Simplified)",
	"cht":  "Chinese (Traditional)",
	"yue":  "Cantonese",
	"wyw":  "Classical Chinese",
	"en":   "English",
	"jp":   "Japanese",
	"kor":  "Korean",
	"fra":  "French",
	"spa":  "Spanish",
	"th":   "Thai",
	"ara":  "Arabic",
	"ru":   "Russian",
	"pt":   "Portuguese",
	"de":   "German",
	"it":   "Italian",
	"el":   "Greek",
	"nl":   "Dutch",
	"pl":   "Polish",
	"bul":  "Bulgarian",
	"est":  "Estonian",
	"dan":  "Danish",
	"fin":  "Finnish",
	"cs":   "Czech",
	"rom":  "Romanian",
	"slo":  "Slovenian",
	"swe":  "Swedish",
	"hu":   "Hungarian",
	"vie":  "Vietnamese",
}

// apiFor maps ISO 639-1 bases to the API codes that differ from them.
var apiFor = map[string]string{
	"ja": "jp",
	"ko": "kor",
	"fr": "fra",
	"es": "spa",
	"ar": "ara",
	"bg": "bul",
	"et": "est",
	"da": "dan",
	"fi": "fin",
	"ro": "rom",
	"sl": "slo",
	"sv": "swe",
	"vi": "vie",
}

// Known reports whether code is one of the API's language codes.
func Known(code string) bool {
	_, ok := codes[code]
	return ok
}

// Describe returns the human-readable name of an API code, or "" if unknown.
func Describe(code string) string {
	return codes[code]
}

// Codes returns the API code set in sorted order.
func Codes() []string {
	out := make([]string, 0, len(codes))
	for code := range codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Normalize converts input into an API language code. API codes pass
// through unchanged; anything else is parsed as a BCP 47 tag and mapped.
// An empty input means Auto.
func Normalize(input string) (string, error) {
	code := strings.ToLower(strings.TrimSpace(input))
	if code == "" {
		return Auto, nil
	}
	if Known(code) {
		return code, nil
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, input)
	}
	base, _ := tag.Base()
	b := base.String()

	if b == "zh" {
		return normalizeChinese(tag), nil
	}
	if mapped, ok := apiFor[b]; ok {
		return mapped, nil
	}
	if Known(b) {
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, input)
}

// normalizeChinese picks between the simplified and traditional codes.
// Traditional-script regions and an explicit Hant script select "cht".
func normalizeChinese(tag language.Tag) string {
	if region, conf := tag.Region(); conf > language.No {
		switch region.String() {
		case "TW", "HK", "MO":
			return "cht"
		case "CN", "SG":
			return "zh"
		}
	}
	if script, _ := tag.Script(); script.String() == "Hant" {
		return "cht"
	}
	return "zh"
}

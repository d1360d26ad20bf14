package formatter

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/width"
)

var (
	hyphenWordRegex = regexp.MustCompile(`-(\w)`)
	upperRegex      = regexp.MustCompile(`([A-Z])`)
)

// EllipsisOption configures Ellipsis.
type EllipsisOption func(*ellipsisConfig)

type ellipsisConfig struct {
	maxLength int
	hasMax    bool
	wide      bool
}

// WithMaxLength leaves strings of at most n runes untouched.
func WithMaxLength(n int) EllipsisOption {
	return func(c *ellipsisConfig) {
		c.maxLength = n
		c.hasMax = true
	}
}

// WithWideChars measures head and tail in wide characters, see WideLength.
func WithWideChars() EllipsisOption {
	return func(c *ellipsisConfig) {
		c.wide = true
	}
}

// Ellipsis keeps the first head and the last tail runes of s and replaces
// everything between them with "...". Strings shorter than head+tail and
// strings containing line breaks are returned unchanged.
func Ellipsis(s string, head, tail int, opts ...EllipsisOption) string {
	cfg := &ellipsisConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.wide {
		head = WideLength(s, head, false)
		tail = WideLength(s, tail, true)
	}

	runes := []rune(s)
	if cfg.hasMax && len(runes) <= cfg.maxLength {
		return s
	}
	if head < 0 || tail < 0 || len(runes) < head+tail {
		return s
	}
	if strings.ContainsAny(s, "\n\r\u2028\u2029") {
		return s
	}

	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}

// WideLength returns how many runes of s fit into n wide characters, counting
// East Asian wide and fullwidth runes as one and every other rune as half.
// Counting starts at the end of s when fromTail is set.
func WideLength(s string, n int, fromTail bool) int {
	if n <= 0 {
		return 0
	}

	runes := []rune(s)
	size := min(2*n, len(runes))
	var window []rune
	if fromTail {
		window = slices.Clone(runes[len(runes)-size:])
		slices.Reverse(window)
	} else {
		window = runes[:size]
	}

	budget, used, count := 2*n, 0, 0
	for _, r := range window {
		used += runeUnits(r)
		if used > budget {
			break
		}
		count++
	}
	return count
}

func runeUnits(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// HyphenToHump converts kebab-case to camelCase: "font-size" -> "fontSize".
func HyphenToHump(s string) string {
	return hyphenWordRegex.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// HumpToHyphen converts camelCase to kebab-case: "fontSize" -> "font-size".
func HumpToHyphen(s string) string {
	return strings.ToLower(upperRegex.ReplaceAllString(s, "-${1}"))
}

// Reverse reverses s rune by rune.
func Reverse(s string) string {
	runes := []rune(s)
	slices.Reverse(runes)
	return string(runes)
}

// ToBoolean reports whether v prints as "true".
func ToBoolean(v any) bool {
	return fmt.Sprint(v) == "true"
}

package formatter

import (
	"regexp"
	"strconv"
	"time"
)

// DefaultDateLayout is used by Date when the layout is empty.
const DefaultDateLayout = "yyyy-MM-dd hh:mm:ss.S"

var (
	yearToken = regexp.MustCompile(`y+`)

	// Order matters: each token replaces its first occurrence only.
	dateTokens = []struct {
		re    *regexp.Regexp
		value func(time.Time) int
	}{
		{regexp.MustCompile(`M+`), func(t time.Time) int { return int(t.Month()) }},
		{regexp.MustCompile(`d+`), func(t time.Time) int { return t.Day() }},
		{regexp.MustCompile(`h+`), func(t time.Time) int { return t.Hour() }},
		{regexp.MustCompile(`m+`), func(t time.Time) int { return t.Minute() }},
		{regexp.MustCompile(`s+`), func(t time.Time) int { return t.Second() }},
		{regexp.MustCompile(`q+`), func(t time.Time) int { return (int(t.Month()) + 2) / 3 }},
		{regexp.MustCompile(`S`), func(t time.Time) int { return t.Nanosecond() / int(time.Millisecond) }},
	}
)

// Date renders t using a token layout:
//
//	y+  year, the last len(token) digits ("yy" -> "24")
//	M+  month     d+  day of month   h+  hour (0-23)
//	m+  minute    s+  second         q+  quarter (1-4)
//	S   milliseconds
//
// A year token keeps as many trailing digits as it has letters; a token longer
// than the year ("yyyyy") writes the whole year.
//
// Only the first occurrence of each token is replaced. One-letter tokens are
// written as is, longer ones are zero padded to two digits. Any other text is
// kept literally.
func Date(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}

	if loc := yearToken.FindStringIndex(layout); loc != nil {
		year := strconv.Itoa(t.Year())
		if n := loc[1] - loc[0]; n < len(year) {
			year = year[len(year)-n:]
		}
		layout = layout[:loc[0]] + year + layout[loc[1]:]
	}

	for _, tok := range dateTokens {
		loc := tok.re.FindStringIndex(layout)
		if loc == nil {
			continue
		}
		v := strconv.Itoa(tok.value(t))
		if loc[1]-loc[0] > 1 {
			v = pad2(v)
		}
		layout = layout[:loc[0]] + v + layout[loc[1]:]
	}
	return layout
}

// pad2 keeps the last two digits of "00"+s.
func pad2(s string) string {
	p := "00" + s
	return p[len(s):]
}

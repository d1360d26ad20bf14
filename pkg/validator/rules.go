package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	notNumAndEnRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
	specialEnRegex   = regexp.MustCompile("[`~!@#$%^&*()_+<>?:\"{},./;'\\[\\]]")
	specialCnRegex   = regexp.MustCompile(`[·！#￥（——）：；“”‘、，|《。》？、【】\[\]]`)
	emailRegex       = regexp.MustCompile(`^[a-z0-9]+([._-]*[a-z0-9])*@([a-z0-9]+[-a-z0-9]*[a-z0-9]+\.){1,63}[a-z0-9]+$`)
	phoneRegex       = regexp.MustCompile(`^1[34578]\d{9}$`)
	httpRegex        = regexp.MustCompile(`^https?://`)
	carNumberRegex   = regexp.MustCompile(`^[京津沪渝冀豫云辽黑湘皖鲁新苏浙赣鄂桂甘晋蒙陕吉闽贵粤青藏川宁琼使领A-Z][A-Z][A-Z0-9]{4}[A-Z0-9挂学警港澳]$`)
	chineseRegex     = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}]+$`)
	hanRegex         = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]`)
)

// OnlyNumAndEn accepts values made of ASCII letters and digits only.
func OnlyNumAndEn(value string) string {
	if notNumAndEnRegex.MatchString(value) {
		return MsgOnlyNumAndEn
	}
	return ""
}

// NoSpecial rejects ASCII and full-width punctuation.
func NoSpecial(value string) string {
	if specialEnRegex.MatchString(value) || specialCnRegex.MatchString(value) {
		return MsgNoSpecial
	}
	return ""
}

// Email accepts lower-case addresses with a dotted domain.
func Email(value string) string {
	if !emailRegex.MatchString(value) {
		return MsgEmail
	}
	return ""
}

// Phone accepts 11-digit mainland China mobile numbers.
func Phone(value string) string {
	if !phoneRegex.MatchString(value) {
		return MsgPhone
	}
	return ""
}

// HTTP accepts values starting with http:// or https://.
func HTTP(value string) string {
	if !httpRegex.MatchString(value) {
		return MsgHTTP
	}
	return ""
}

// CarNumber accepts mainland China license plates.
func CarNumber(value string) string {
	if !carNumberRegex.MatchString(value) {
		return MsgCarNumber
	}
	return ""
}

// Chinese accepts non-empty values made of CJK unified ideographs only.
func Chinese(value string) string {
	if !chineseRegex.MatchString(value) {
		return MsgChinese
	}
	return ""
}

// NoChinese rejects values containing any CJK unified ideograph.
func NoChinese(value string) string {
	if hanRegex.MatchString(value) {
		return MsgNoChinese
	}
	return ""
}

// UUID accepts the canonical 36 character UUID form.
func UUID(value string) string {
	if len(value) != 36 {
		return MsgUUID
	}
	if _, err := uuid.Parse(value); err != nil {
		return MsgUUID
	}
	return ""
}

// Length returns a validator bounding the rune count of a value. A bound of -1
// disables it; min == max requires an exact length. Empty values (see IsEmpty)
// count as zero. With countChinese every Chinese character counts as three,
// matching its UTF-8 size. label prefixes the message.
func Length(min, max int, label string, countChinese bool) Func {
	return func(value string) string {
		n := 0
		if !IsEmpty(value) {
			n = utf8.RuneCountInString(value)
		}

		note := ""
		if countChinese && n > 0 {
			n += 2 * len(hanRegex.FindAllStringIndex(value, -1))
			note = " (a Chinese character counts as 3 bytes)"
		}

		switch {
		case min >= 0 && min == max && n != min:
			return lengthMessage(label, fmt.Sprintf("length must be %d", min), note)
		case min != -1 && n < min:
			return lengthMessage(label, fmt.Sprintf("length must be at least %d", min), note)
		case max != -1 && n > max:
			return lengthMessage(label, fmt.Sprintf("length must be at most %d", max), note)
		}
		return ""
	}
}

func lengthMessage(label, msg, note string) string {
	return strings.TrimSpace(label+" "+msg) + note
}

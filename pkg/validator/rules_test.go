package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/utilkit/pkg/validator"
)

func TestFuncs(t *testing.T) {
	tests := []struct {
		name    string
		fn      validator.Func
		valid   []string
		invalid []string
		message string
	}{
		{
			name:    "OnlyNumAndEn",
			fn:      validator.OnlyNumAndEn,
			valid:   []string{"abc123", "ABC", "", "007"},
			invalid: []string{"abc 123", "a-b", "héllo", "你好"},
			message: validator.MsgOnlyNumAndEn,
		},
		{
			name:    "NoSpecial",
			fn:      validator.NoSpecial,
			valid:   []string{"hello", "hello world", "", "你好"},
			invalid: []string{"hello!", "a@b", "x[1]", "你好！", "【注意】", "50%"},
			message: validator.MsgNoSpecial,
		},
		{
			name:    "Email",
			fn:      validator.Email,
			valid:   []string{"user@example.com", "user.name@mail.example.com", "a_b-c@example.org"},
			invalid: []string{"", "not-an-email", "User@Example.com", "user@example", "@example.com"},
			message: validator.MsgEmail,
		},
		{
			name:    "Phone",
			fn:      validator.Phone,
			valid:   []string{"13812345678", "15900000000", "18611112222"},
			invalid: []string{"", "12345678901", "1381234567", "138123456789", "+8613812345678"},
			message: validator.MsgPhone,
		},
		{
			name:    "HTTP",
			fn:      validator.HTTP,
			valid:   []string{"http://example.com", "https://example.com/path"},
			invalid: []string{"", "ftp://example.com", "example.com", " https://example.com"},
			message: validator.MsgHTTP,
		},
		{
			name:    "CarNumber",
			fn:      validator.CarNumber,
			valid:   []string{"京A12345", "粤B1234学", "AB12345"},
			invalid: []string{"", "京A1234", "京a12345", "https://example.com"},
			message: validator.MsgCarNumber,
		},
		{
			name:    "Chinese",
			fn:      validator.Chinese,
			valid:   []string{"你好", "中文"},
			invalid: []string{"", "你好a", "hello", "你 好"},
			message: validator.MsgChinese,
		},
		{
			name:    "NoChinese",
			fn:      validator.NoChinese,
			valid:   []string{"", "hello", "héllo"},
			invalid: []string{"a你", "中文"},
			message: validator.MsgNoChinese,
		},
		{
			name:    "UUID",
			fn:      validator.UUID,
			valid:   []string{"550e8400-e29b-41d4-a716-446655440000"},
			invalid: []string{"", "550e8400e29b41d4a716446655440000", "not-a-uuid", "550e8400-e29b-41d4-a716-44665544000g"},
			message: validator.MsgUUID,
		},
		{
			name:    "IDCard",
			fn:      validator.IDCard,
			valid:   []string{"", "11010519491231002X", "11010519491231002x", "110105491231002"},
			invalid: []string{"110105194912310021", "99010519491231002X", "1101051949123100", "11010519491332002X", "abc"},
			message: validator.MsgIDCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.valid {
				assert.Empty(t, tt.fn(v), "expected %q to be valid", v)
			}
			for _, v := range tt.invalid {
				assert.Equal(t, tt.message, tt.fn(v), "expected %q to be invalid", v)
			}
		})
	}
}

func TestLength(t *testing.T) {
	t.Run("within bounds", func(t *testing.T) {
		fn := validator.Length(2, 5, "Name", false)
		assert.Empty(t, fn("ab"))
		assert.Empty(t, fn("abcde"))
	})

	t.Run("too short", func(t *testing.T) {
		fn := validator.Length(2, 5, "Name", false)
		assert.Equal(t, "Name length must be at least 2", fn("a"))
	})

	t.Run("too long", func(t *testing.T) {
		fn := validator.Length(2, 5, "Name", false)
		assert.Equal(t, "Name length must be at most 5", fn("abcdef"))
	})

	t.Run("exact length", func(t *testing.T) {
		fn := validator.Length(4, 4, "Code", false)
		assert.Empty(t, fn("1234"))
		assert.Equal(t, "Code length must be 4", fn("123"))
		assert.Equal(t, "Code length must be 4", fn("12345"))
	})

	t.Run("disabled bounds", func(t *testing.T) {
		assert.Empty(t, validator.Length(-1, 3, "", false)(""))
		assert.Empty(t, validator.Length(2, -1, "", false)("a long value"))
		assert.Empty(t, validator.Length(-1, -1, "", false)("anything"))
	})

	t.Run("no label", func(t *testing.T) {
		assert.Equal(t, "length must be at least 3", validator.Length(3, -1, "", false)("ab"))
	})

	t.Run("counts runes", func(t *testing.T) {
		assert.Empty(t, validator.Length(2, 2, "", false)("你好"))
	})

	t.Run("chinese characters count as three", func(t *testing.T) {
		fn := validator.Length(-1, 5, "Title", true)
		assert.Empty(t, fn("你a"))
		assert.Equal(t, "Title length must be at most 5 (a Chinese character counts as 3 bytes)", fn("你好"))
	})

	t.Run("null-like values count as empty", func(t *testing.T) {
		fn := validator.Length(1, -1, "", false)
		assert.Equal(t, "length must be at least 1", fn("null"))
		assert.Equal(t, "length must be at least 1", fn("  "))
	})
}

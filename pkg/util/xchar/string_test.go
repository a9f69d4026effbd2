package xchar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsChinese(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"hello", false},
		{"你好", true},
		{"hello 世界", true},
		{"一", true},
		{"龥", true},
		{"龦", false},
		{"，。", false},
		{"こんにちは", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsChinese(tt.input))
		})
	}
}

func TestContainsMultibyte(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"ascii", "hello", false},
		{"latin1", "café ÿ", false},
		{"chinese", "你好", true},
		{"latin_extended", "Ā", true},
		{"emoji", "ok 😀", true},
		{"invalid_utf8", "\xff", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsMultibyte(tt.input))
		})
	}
}

func TestContainsCJK(t *testing.T) {
	assert.True(t, ContainsCJK("abc。"))
	assert.True(t, ContainsCJK("你"))
	assert.False(t, ContainsCJK("abc"))
	assert.False(t, ContainsCJK(""))
}

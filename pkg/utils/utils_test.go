package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("user@example.com"))
	assert.True(t, IsEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("user@"))
	assert.False(t, IsEmail("@example.com"))
	assert.False(t, IsEmail(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcde...", Truncate("abcdefgh", 5))
	// 按字符截断而不是字节
	assert.Equal(t, "你好...", Truncate("你好世界", 2))
}

func TestPtrVal(t *testing.T) {
	p := Ptr(42)
	assert.Equal(t, 42, Val(p))

	var nilPtr *string
	assert.Equal(t, "", Val(nilPtr))
}

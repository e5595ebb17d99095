package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"01", "1"},
		{"007", "7"},
		{" 1 ", "1"},
		{"0", "0"},
		{"00", "0"},
		{"000", "0"},
		{"", ""},
		{"   ", ""},
		{"10", "10"},
		{"A1", "A1"},
		{" ab ", "ab"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeID(c.in), "NormalizeID(%q)", c.in)
	}
}

func TestNormalizeIDIdempotent(t *testing.T) {
	inputs := []string{"01", "007", " 1 ", "0", "00", "", "A1", "10", " x "}
	for _, in := range inputs {
		once := NormalizeID(in)
		assert.Equal(t, once, NormalizeID(once), "NormalizeID(%q) not idempotent", in)
	}
}

func TestYN(t *testing.T) {
	assert.Equal(t, "Y", YN("Y"))
	assert.Equal(t, "Y", YN("y"))
	assert.Equal(t, "Y", YN("  y  "))
	assert.Equal(t, "N", YN("yes"))
	assert.Equal(t, "N", YN(""))
	assert.Equal(t, "N", YN("N"))
	assert.Equal(t, "N", YN("anything"))
}

func TestActiveHelpers(t *testing.T) {
	assert.True(t, IsActiveStatus("active"))
	assert.True(t, IsActiveStatus(" Active "))
	assert.False(t, IsActiveStatus("inactive"))
	assert.False(t, IsActiveStatus(""))

	assert.True(t, IsYes(" y "))
	assert.False(t, IsYes("n"))
	assert.False(t, IsYes(""))
}

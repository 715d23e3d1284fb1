package webui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{3.5, "R$ 3,50"},
		{12, "R$ 12,00"},
		{999.99, "R$ 999,99"},
		{1000, "R$ 1.000,00"},
		{22.5, "R$ 22,50"},
		{1234567.89, "R$ 1.234.567,89"},
		{-45.3, "-R$ 45,30"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatBRL(c.in), "FormatBRL(%v)", c.in)
	}
}

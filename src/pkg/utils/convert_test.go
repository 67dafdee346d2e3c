package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCardNumber(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain pan", "4111111111111234", "************1234"},
		{"spaced pan", "4111 1111 1111 1234", "************1234"},
		{"dashed pan", "4111-1111-1111-1234", "************1234"},
		{"short number", "1234", "1234"},
		{"empty", "", ""},
		{"non digits only", "abcd", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskCardNumber(tc.input))
		})
	}
}

func TestConvertInt(t *testing.T) {
	assert.Equal(t, 7, ConvertInt(7))
	assert.Equal(t, 7, ConvertInt(int64(7)))
	assert.Equal(t, 7, ConvertInt(7.9))
	assert.Equal(t, 7, ConvertInt("7"))
	assert.Equal(t, 0, ConvertInt("not a number"))
	assert.Equal(t, 0, ConvertInt(nil))
}

func TestConvertString(t *testing.T) {
	assert.Equal(t, `{"a":1}`, ConvertString(map[string]int{"a": 1}))
	assert.Equal(t, `"x"`, ConvertString("x"))
}

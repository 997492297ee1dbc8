package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "bytes", bytes: 512, expected: "512 B"},
		{name: "kilobytes", bytes: 2048, expected: "2.0 KB"},
		{name: "megabytes", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
		{name: "fractional megabytes", bytes: 1536 * 1024, expected: "1.5 MB"},
		{name: "gigabytes", bytes: 3 * 1024 * 1024 * 1024, expected: "3.0 GB"},
		{name: "zero", bytes: 0, expected: "0 B"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatBytes(tc.bytes))
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain name", input: "license.pdf", expected: "license.pdf"},
		{name: "spaces replaced", input: "my license.pdf", expected: "my_license.pdf"},
		{name: "path stripped", input: "../../etc/passwd", expected: "passwd"},
		{name: "windows path stripped", input: `C:\docs\tax cert.png`, expected: "tax_cert.png"},
		{name: "multibyte replaced", input: "営業許可証.jpg", expected: "jpg"},
		{name: "empty", input: "", expected: "file"},
		{name: "only unsafe runes", input: "///", expected: "file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeFileName(tc.input))
		})
	}
}

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMeta struct {
	Title    string   `yaml:"title"`
	Date     string   `yaml:"date"`
	Tags     []string `yaml:"tags"`
	Featured bool     `yaml:"featured"`
}

func TestFrontMatterRoundTrip(t *testing.T) {
	meta := testMeta{
		Title:    "Launching Our New Platform",
		Date:     "2026-03-14",
		Tags:     []string{"product", "announcement"},
		Featured: true,
	}
	body := "# Heading\n\nSome **markdown** content.\n"

	data, err := EncodeFrontMatter(meta, body)
	require.NoError(t, err)

	var decoded testMeta
	gotBody, err := DecodeFrontMatter(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, meta, decoded)
	assert.Equal(t, body, gotBody)
}

func TestEncodeFrontMatterAddsTrailingNewline(t *testing.T) {
	data, err := EncodeFrontMatter(testMeta{Title: "t"}, "no trailing newline")
	require.NoError(t, err)

	var decoded testMeta
	body, err := DecodeFrontMatter(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, "no trailing newline\n", body)
}

func TestDecodeFrontMatterEmptyBody(t *testing.T) {
	data, err := EncodeFrontMatter(testMeta{Title: "t"}, "")
	require.NoError(t, err)

	var decoded testMeta
	body, err := DecodeFrontMatter(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, "t", decoded.Title)
	assert.Equal(t, "", body)
}

func TestDecodeFrontMatterMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no front matter", "just a body with no metadata"},
		{"unterminated block", "---\ntitle: t\nno closing delimiter"},
		{"invalid yaml", "---\ntitle: [unclosed\n---\n\nbody"},
		{"empty file", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meta testMeta
			_, err := DecodeFrontMatter([]byte(tt.data), &meta)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestDecodeFrontMatterClosingDelimiterAtEOF(t *testing.T) {
	var meta testMeta
	body, err := DecodeFrontMatter([]byte("---\ntitle: t\n---"), &meta)
	require.NoError(t, err)
	assert.Equal(t, "t", meta.Title)
	assert.Equal(t, "", body)
}

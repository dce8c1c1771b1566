package storage

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedRecord is returned when a stored record cannot be decoded.
var ErrMalformedRecord = errors.New("malformed record")

const frontMatterDelimiter = "---"

// EncodeFrontMatter serializes meta as a YAML front-matter block followed
// by the body text. The body is stored verbatim.
func EncodeFrontMatter(meta any, body string) ([]byte, error) {
	out, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal front matter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')
	buf.Write(out)
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')
	buf.WriteByte('\n')
	buf.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// DecodeFrontMatter parses a front-matter document into meta and returns
// the body text. A document without a parsable front-matter block fails
// with ErrMalformedRecord.
func DecodeFrontMatter(data []byte, meta any) (string, error) {
	doc := string(data)
	rest, found := strings.CutPrefix(doc, frontMatterDelimiter+"\n")
	if !found {
		return "", fmt.Errorf("%w: missing front matter block", ErrMalformedRecord)
	}
	block, body, found := cutFrontMatter(rest)
	if !found {
		return "", fmt.Errorf("%w: unterminated front matter block", ErrMalformedRecord)
	}
	if err := yaml.Unmarshal([]byte(block), meta); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	body = strings.TrimPrefix(body, "\n")
	return body, nil
}

// cutFrontMatter splits the text after the opening delimiter into the YAML
// block and the body at the closing delimiter line.
func cutFrontMatter(s string) (block, body string, found bool) {
	if rest, ok := strings.CutPrefix(s, frontMatterDelimiter+"\n"); ok {
		return "", rest, true
	}
	if idx := strings.Index(s, "\n"+frontMatterDelimiter+"\n"); idx >= 0 {
		return s[:idx+1], s[idx+len(frontMatterDelimiter)+2:], true
	}
	if strings.HasSuffix(s, "\n"+frontMatterDelimiter) {
		return s[:len(s)-len(frontMatterDelimiter)], "", true
	}
	return "", "", false
}

package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// Field is one front matter key. Fields render in slice order.
type Field struct {
	Key   string
	Value any
}

var errUnclosed = errors.New("front matter is not closed")

// ParseFrontmatter separates a leading YAML block from the Markdown body.
// Content without a leading fence has empty metadata. CRLF line endings are
// accepted, and the closing fence may be the last line of the file.
func ParseFrontmatter(content string) (map[string]any, string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	meta := map[string]any{}
	if !strings.HasPrefix(content, fence+"\n") {
		return meta, content, nil
	}
	lines := strings.SplitAfter(content[len(fence)+1:], "\n")
	var raw strings.Builder
	for i, line := range lines {
		if strings.TrimRight(line, "\n") != fence {
			raw.WriteString(line)
			continue
		}
		if err := yaml.Unmarshal([]byte(raw.String()), &meta); err != nil {
			return nil, "", fmt.Errorf("decode front matter: %w", err)
		}
		return meta, strings.Join(lines[i+1:], ""), nil
	}
	return nil, "", errUnclosed
}

// RenderFrontmatter writes fields as a YAML block followed by body, keeping
// field order.
func RenderFrontmatter(fields []Field, body string) (string, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range fields {
		value := &yaml.Node{}
		if err := value.Encode(field.Value); err != nil {
			return "", fmt.Errorf("encode front matter %s: %w", field.Key, err)
		}
		mapping.Content = append(mapping.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: field.Key}, value)
	}

	var buf bytes.Buffer
	buf.WriteString(fence + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(mapping); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	buf.WriteString(fence + "\n")
	if body != "" && !strings.HasPrefix(body, "\n") {
		buf.WriteByte('\n')
	}
	buf.WriteString(body)
	return buf.String(), nil
}

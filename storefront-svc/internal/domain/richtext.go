package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

type Inline struct {
	Type     string   `json:"type,omitempty"`
	Text     string   `json:"text,omitempty"`
	URL      string   `json:"url,omitempty"`
	Children []Inline `json:"children,omitempty"`
}

type Block struct {
	Type     string   `json:"type"`
	Level    int      `json:"level,omitempty"`
	Children []Inline `json:"children,omitempty"`
}

// RichText is a blocks-editor document. Older content types stored the
// description as a plain string, which decodes as a single paragraph.
type RichText []Block

func (rt *RichText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*rt = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*rt = nil
			return nil
		}
		*rt = RichText{{Type: "paragraph", Children: []Inline{{Type: "text", Text: s}}}}
		return nil
	}

	// anything other than a block list carries no usable text
	var blocks []Block
	if data[0] != '[' || json.Unmarshal(data, &blocks) != nil {
		*rt = nil
		return nil
	}
	*rt = blocks
	return nil
}

// PlainText flattens every block to its text, blocks separated by a space.
func (rt RichText) PlainText() string {
	parts := make([]string, 0, len(rt))
	for _, block := range rt {
		var sb strings.Builder
		for _, child := range block.Children {
			writeInline(&sb, child)
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, " ")
}

func writeInline(sb *strings.Builder, in Inline) {
	sb.WriteString(in.Text)
	for _, child := range in.Children {
		writeInline(sb, child)
	}
}

// Excerpt returns the first text run of the first block, cut to n runes.
func (rt RichText) Excerpt(n int) string {
	if len(rt) == 0 || len(rt[0].Children) == 0 {
		return ""
	}
	text := rt[0].Children[0].Text
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}

package notion

import (
	"fmt"
	"strings"

	"github.com/bnema/kb-summarizer/internal/domain"
)

// maxRichTextRunes is the API limit for a single rich text segment.
const maxRichTextRunes = 2000

type richText struct {
	Type string      `json:"type"`
	Text textContent `json:"text"`
}

type textContent struct {
	Content string `json:"content"`
}

// richTextSegments splits text into consecutive segments under the per-segment limit.
func richTextSegments(text string) []richText {
	segments := []richText{}
	runes := []rune(text)
	for len(runes) > 0 {
		n := min(len(runes), maxRichTextRunes)
		segments = append(segments, richText{Type: "text", Text: textContent{Content: string(runes[:n])}})
		runes = runes[n:]
	}

	return segments
}

func encodeBlocks(blocks []domain.Block) []map[string]any {
	encoded := make([]map[string]any, 0, len(blocks))
	for _, block := range blocks {
		encoded = append(encoded, encodeBlock(block, true))
	}

	return encoded
}

// childrenOf returns the nested blocks of the variants that carry any.
func childrenOf(block domain.Block) []domain.Block {
	switch b := block.(type) {
	case domain.Heading:
		return b.Children
	case domain.Callout:
		return b.Children
	default:
		return nil
	}
}

// fitsInline reports whether the block and its whole subtree can travel in one
// request: no block in it has more children than a request accepts.
func fitsInline(block domain.Block) bool {
	children := childrenOf(block)
	if len(children) > maxBlocksPerRequest {
		return false
	}
	for _, child := range children {
		if !fitsInline(child) {
			return false
		}
	}

	return true
}

// encodeBlock leaves the children out when withChildren is false so they can be
// appended to the created block afterwards.
func encodeBlock(block domain.Block, withChildren bool) map[string]any {
	switch b := block.(type) {
	case domain.Heading:
		kind := headingType(b.Level)
		body := map[string]any{"rich_text": richTextSegments(b.Text)}
		if len(b.Children) > 0 {
			body["is_toggleable"] = true
			if withChildren {
				body["children"] = encodeBlocks(b.Children)
			}
		}
		return wrap(kind, body)
	case domain.Paragraph:
		return wrap("paragraph", map[string]any{"rich_text": richTextSegments(b.Text)})
	case domain.BulletedItem:
		return wrap("bulleted_list_item", map[string]any{"rich_text": richTextSegments(b.Text)})
	case domain.ChecklistItem:
		return wrap("to_do", map[string]any{"rich_text": richTextSegments(b.Text), "checked": b.Checked})
	case domain.Code:
		return wrap("code", map[string]any{"rich_text": richTextSegments(b.Text), "language": b.Language})
	case domain.Callout:
		body := map[string]any{"rich_text": richTextSegments(b.Text)}
		if b.Icon != "" {
			body["icon"] = map[string]any{"type": "emoji", "emoji": b.Icon}
		}
		if len(b.Children) > 0 && withChildren {
			body["children"] = encodeBlocks(b.Children)
		}
		return wrap("callout", body)
	case domain.Divider:
		return wrap("divider", map[string]any{})
	case domain.Embed:
		return wrap("embed", map[string]any{"url": b.URL})
	default:
		// The block variant is closed; this only guards against a new kind added
		// without an encoder.
		return wrap("paragraph", map[string]any{"rich_text": richTextSegments(fmt.Sprintf("unsupported block %s", block.Kind()))})
	}
}

func headingType(level int) string {
	switch {
	case level <= 1:
		return "heading_1"
	case level == 2:
		return "heading_2"
	default:
		return "heading_3"
	}
}

func wrap(kind string, body map[string]any) map[string]any {
	return map[string]any{
		"object": "block",
		"type":   kind,
		kind:     body,
	}
}

func encodeSchema(columns []domain.Column) (map[string]any, error) {
	schema := make(map[string]any, len(columns))
	for _, column := range columns {
		switch column.Type {
		case domain.ColumnTypeTitle, domain.ColumnTypeURL, domain.ColumnTypeRichText, domain.ColumnTypeMultiSelect:
			schema[column.Name] = map[string]any{string(column.Type): map[string]any{}}
		default:
			return nil, fmt.Errorf("column %q: unsupported type %q", column.Name, column.Type)
		}
	}

	return schema, nil
}

func encodeProperties(values []domain.PropertyValue) (map[string]any, error) {
	properties := make(map[string]any, len(values))
	for _, value := range values {
		switch value.Type {
		case domain.ColumnTypeTitle:
			properties[value.Column] = map[string]any{"title": richTextSegments(value.Text)}
		case domain.ColumnTypeRichText:
			properties[value.Column] = map[string]any{"rich_text": richTextSegments(value.Text)}
		case domain.ColumnTypeURL:
			// An empty url must be sent as null.
			var link any
			if value.URL != "" {
				link = value.URL
			}
			properties[value.Column] = map[string]any{"url": link}
		case domain.ColumnTypeMultiSelect:
			options := make([]map[string]string, 0, len(value.Values))
			seen := make(map[string]struct{}, len(value.Values))
			for _, name := range value.Values {
				// Option names may not contain commas and must be unique.
				name = strings.Join(strings.Fields(strings.ReplaceAll(name, ",", " ")), " ")
				if name == "" {
					continue
				}
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				options = append(options, map[string]string{"name": name})
			}
			properties[value.Column] = map[string]any{"multi_select": options}
		default:
			return nil, fmt.Errorf("property %q: unsupported type %q", value.Column, value.Type)
		}
	}

	return properties, nil
}

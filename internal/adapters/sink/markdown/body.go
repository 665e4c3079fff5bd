package markdown

import (
	"strings"

	"github.com/bnema/kb-summarizer/internal/blocktree"
	"github.com/bnema/kb-summarizer/internal/domain"
)

// Body renders blocks as markdown. Consecutive list items stay in one list.
func Body(blocks []domain.Block) string {
	var b strings.Builder
	var previous domain.Block

	for _, block := range blocks {
		chunk := renderBlock(block)
		if chunk == "" {
			continue
		}
		if previous != nil {
			if isListItem(previous) && isListItem(block) {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(chunk)
		previous = block
	}

	if b.Len() == 0 {
		return ""
	}

	return b.String() + "\n"
}

func renderBlock(block domain.Block) string {
	switch b := block.(type) {
	case domain.Heading:
		// The page title takes level 1, so headings shift down one level.
		heading := strings.Repeat("#", min(max(b.Level, 1)+1, 6)) + " " + b.Text
		if len(b.Children) == 0 {
			return heading
		}
		return heading + "\n\n" + strings.TrimSuffix(Body(b.Children), "\n")
	case domain.Paragraph:
		return b.Text
	case domain.BulletedItem:
		return "- " + b.Text
	case domain.ChecklistItem:
		if b.Checked {
			return "- [x] " + b.Text
		}
		return "- [ ] " + b.Text
	case domain.Code:
		language := b.Language
		if language == blocktree.PlainTextLanguage {
			language = "text"
		}
		return "```" + language + "\n" + strings.TrimRight(b.Text, "\n") + "\n```"
	case domain.Callout:
		text := strings.TrimSpace(b.Icon + " " + b.Text)
		if len(b.Children) > 0 {
			text += "\n\n" + strings.TrimSuffix(Body(b.Children), "\n")
		}
		return quote(text)
	case domain.Divider:
		return "---"
	case domain.Embed:
		return "<" + b.URL + ">"
	default:
		return ""
	}
}

func isListItem(block domain.Block) bool {
	switch block.(type) {
	case domain.BulletedItem, domain.ChecklistItem:
		return true
	default:
		return false
	}
}

func quote(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
			continue
		}
		lines[i] = "> " + line
	}

	return strings.Join(lines, "\n")
}

package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultMaxTextWidth = 96
	relevanceBarWidth   = 20
	indentUnit          = "  "
)

type RenderOptions struct {
	// MaxTextWidth truncates long paragraphs; zero means the default, negative disables.
	MaxTextWidth int
}

func renderView(summary domain.SummaryResult, blocks []domain.Block, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(summary.DisplayTitle()),
		s.header.Render(fmt.Sprintf("blocks: %d", domain.CountBlocks(blocks))),
	}

	if summary.PracticalApplication != nil {
		lines = append(lines, relevanceLine(summary.PracticalApplication.RelevanceScore, s))
	}

	if len(blocks) == 0 {
		lines = append(lines, s.empty.Render("Nothing to render."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	outline := blockLines(blocks, 0, opts, s)
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, outline...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func blockLines(blocks []domain.Block, depth int, opts RenderOptions, s styles) []string {
	indent := strings.Repeat(indentUnit, depth)
	lines := make([]string, 0, len(blocks))

	for _, block := range blocks {
		switch b := block.(type) {
		case domain.Heading:
			lines = append(lines, indent+s.heading.Render(strings.Repeat("#", max(b.Level, 1))+" "+b.Text))
			lines = append(lines, blockLines(b.Children, depth+1, opts, s)...)
		case domain.Paragraph:
			lines = append(lines, indent+s.detail.Render(truncate(b.Text, opts.width())))
		case domain.BulletedItem:
			lines = append(lines, indent+s.detail.Render("• "+truncate(b.Text, opts.width())))
		case domain.ChecklistItem:
			box := "[ ]"
			if b.Checked {
				box = "[x]"
			}
			lines = append(lines, indent+s.checklist.Render(box+" "+truncate(b.Text, opts.width())))
		case domain.Code:
			lines = append(lines, indent+s.code.Render(fmt.Sprintf("```%s (%s)", b.Language, lineCount(b.Text))))
		case domain.Callout:
			lines = append(lines, indent+s.callout.Render(strings.TrimSpace(b.Icon+" "+truncate(b.Text, opts.width()))))
			lines = append(lines, blockLines(b.Children, depth+1, opts, s)...)
		case domain.Divider:
			lines = append(lines, indent+s.divider.Render(strings.Repeat("─", 24)))
		case domain.Embed:
			lines = append(lines, indent+s.link.Render("↗ "+b.URL))
		}
	}

	return lines
}

func relevanceLine(score float64, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.header.Render("relevance:"),
		" ",
		renderScoreBar(score, relevanceBarWidth, s),
		" ",
		s.detail.Render(fmt.Sprintf("%g/10", score)),
	)
}

func renderScoreBar(score float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := math.Min(math.Max(score, 0), 10) / 10
	filled := int(math.Round(float64(width) * fraction))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func (o RenderOptions) width() int {
	if o.MaxTextWidth == 0 {
		return defaultMaxTextWidth
	}
	return o.MaxTextWidth
}

func truncate(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	if width < 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width <= 1 {
		return string(runes[:width])
	}

	return string(runes[:width-1]) + "…"
}

func lineCount(code string) string {
	n := strings.Count(strings.TrimRight(code, "\n"), "\n") + 1
	if n == 1 {
		return "1 line"
	}
	return fmt.Sprintf("%d lines", n)
}

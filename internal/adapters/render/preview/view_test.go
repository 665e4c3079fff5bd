package preview

import (
	"strings"
	"testing"

	"github.com/bnema/kb-summarizer/internal/blocktree"
	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() domain.SummaryResult {
	return domain.SummaryResult{
		URL:     "https://go.dev/blog/intro-generics",
		Title:   "An Introduction To Generics",
		Summary: "Go 1.18 adds type parameters.",
		Tags:    []string{"go"},
		Sections: []domain.Section{{
			Title:     "Type parameters",
			Summary:   "Square brackets declare them.",
			KeyPoints: []string{"Constraints are interfaces"},
			CodeExamples: []domain.CodeExample{{
				Code:     "func Min[T cmp.Ordered](x, y T) T {\n\treturn min(x, y)\n}\n",
				Language: "golang",
			}},
		}},
		PracticalApplication: &domain.PracticalApplication{
			RelevanceScore:   7.5,
			RelevanceSummary: "Shared helpers",
			ActionableItems:  []string{"Replace interface{} helpers"},
		},
	}
}

func TestRenderOutlinesBlockTree(t *testing.T) {
	summary := sampleSummary()
	blocks, err := blocktree.Render(summary)
	require.NoError(t, err)

	output, err := Render(summary, blocks, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "An Introduction To Generics")
	assert.Contains(t, output, "blocks: 14")
	assert.Contains(t, output, "relevance:")
	assert.Contains(t, output, "7.5/10")
	assert.Contains(t, output, "[===============-----]")
	assert.Contains(t, output, "# Summary")
	assert.Contains(t, output, "## Type parameters")
	assert.Contains(t, output, "• Constraints are interfaces")
	assert.Contains(t, output, "[ ] Replace interface{} helpers")
	assert.Contains(t, output, "```go (3 lines)")
	assert.Contains(t, output, "↗ https://go.dev/blog/intro-generics")
}

func TestRenderIndentsChildren(t *testing.T) {
	blocks := []domain.Block{
		domain.Heading{Level: 3, Text: "Key Takeaways", Children: []domain.Block{
			domain.BulletedItem{Text: "first"},
		}},
	}

	output, err := Render(domain.SummaryResult{URL: "https://x"}, blocks, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "### Key Takeaways")
	assert.Contains(t, output, indentUnit+"• first")
	assert.NotContains(t, output, "relevance:")
}

func TestRenderEmptyTree(t *testing.T) {
	output, err := Render(domain.SummaryResult{URL: "https://x"}, nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Summary from https://x")
	assert.Contains(t, output, "blocks: 0")
	assert.Contains(t, output, "Nothing to render.")
}

func TestTruncateLongText(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 20)
	assert.Equal(t, strings.Repeat("a", 9)+"…", truncate(long, 10))
	assert.Equal(t, long, truncate(long, -1))
	assert.Equal(t, "a b", truncate("a\n\n  b", 10))
}

func TestRenderScoreBarClampsScore(t *testing.T) {
	t.Parallel()

	s := newStyles()
	assert.Equal(t, "[==========]", renderScoreBar(42, 10, s))
	assert.Equal(t, "[----------]", renderScoreBar(-3, 10, s))
	assert.Empty(t, renderScoreBar(5, 0, s))
}

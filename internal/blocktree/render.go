// Package blocktree turns a summary document into the ordered block forest published
// to the knowledge base.
package blocktree

import (
	"strconv"
	"strings"

	"github.com/bnema/kb-summarizer/internal/domain"
)

const (
	HeadingSummary              = "Summary"
	HeadingPracticalApplication = "Practical Application"
	HeadingKeyTakeaways         = "Key Takeaways"
	HeadingActionItems          = "Action Items"
	HeadingRelatedConcepts      = "Related Concepts"
	HeadingDetailedSections     = "Detailed Sections"

	ConceptDelimiter = " • "

	iconSource    = "🔗"
	iconRelevance = "🎯"
	iconUser      = "💡"
)

// Render builds the block forest for summary. It fails only for summaries that carry
// errors.
func Render(summary domain.SummaryResult) ([]domain.Block, error) {
	if summary.HasErrors() {
		return nil, domain.ErrErroneousSummary
	}

	blocks := []domain.Block{sourceCallout(summary.URL)}

	if summary.Summary != "" {
		blocks = append(blocks,
			domain.Heading{Level: 1, Text: HeadingSummary},
			domain.Paragraph{Text: summary.Summary},
		)
	}

	if summary.PracticalApplication != nil {
		blocks = append(blocks, practicalApplicationBlocks(*summary.PracticalApplication)...)
	}

	if len(summary.Sections) > 0 {
		blocks = append(blocks, domain.Heading{Level: 1, Text: HeadingDetailedSections})
		for _, section := range summary.Sections {
			blocks = append(blocks, sectionBlocks(section)...)
		}
	}

	return append(blocks, domain.Divider{}), nil
}

func sourceCallout(url string) domain.Block {
	return domain.Callout{
		Icon:     iconSource,
		Text:     "Source: " + url,
		Children: []domain.Block{domain.Embed{URL: url}},
	}
}

func practicalApplicationBlocks(app domain.PracticalApplication) []domain.Block {
	blocks := []domain.Block{
		domain.Heading{Level: 1, Text: HeadingPracticalApplication},
		domain.Callout{Icon: iconRelevance, Text: RelevanceText(app)},
	}

	if len(app.KeyTakeaways) > 0 {
		children := make([]domain.Block, 0, len(app.KeyTakeaways))
		for _, takeaway := range app.KeyTakeaways {
			children = append(children, domain.BulletedItem{Text: takeaway})
		}
		blocks = append(blocks, domain.Heading{Level: 3, Text: HeadingKeyTakeaways, Children: children})
	}

	if len(app.ActionableItems) > 0 {
		children := make([]domain.Block, 0, len(app.ActionableItems))
		for _, item := range app.ActionableItems {
			children = append(children, domain.ChecklistItem{Text: item})
		}
		blocks = append(blocks, domain.Heading{Level: 3, Text: HeadingActionItems, Children: children})
	}

	if len(app.RelatedConcepts) > 0 {
		blocks = append(blocks,
			domain.Heading{Level: 3, Text: HeadingRelatedConcepts},
			domain.Paragraph{Text: strings.Join(app.RelatedConcepts, ConceptDelimiter)},
		)
	}

	return blocks
}

func sectionBlocks(section domain.Section) []domain.Block {
	blocks := []domain.Block{
		domain.Heading{Level: 2, Text: section.Title},
		domain.Paragraph{Text: section.Summary},
	}

	if section.UserRelevance != "" {
		blocks = append(blocks, domain.Callout{Icon: iconUser, Text: section.UserRelevance})
	}

	for _, point := range section.KeyPoints {
		blocks = append(blocks, domain.BulletedItem{Text: point})
	}

	for _, example := range section.CodeExamples {
		if example.Description != "" {
			blocks = append(blocks, domain.Paragraph{Text: example.Description})
		}
		blocks = append(blocks, domain.Code{Text: example.Code, Language: NormalizeLanguage(example.Language)})
	}

	return blocks
}

// RelevanceText is the one-line rendering of a practical application used by the
// relevance callout and the index row.
func RelevanceText(app domain.PracticalApplication) string {
	score := strconv.FormatFloat(app.RelevanceScore, 'f', -1, 64)
	if app.RelevanceSummary == "" {
		return "Relevance " + score + "/10"
	}

	return "Relevance " + score + "/10: " + app.RelevanceSummary
}

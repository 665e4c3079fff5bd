// Package summarizer holds what every model-backed summarizer shares: the prompt, the
// output schema and strict decoding of the model's answer.
package summarizer

import (
	"fmt"
	"strings"

	"github.com/bnema/kb-summarizer/internal/domain"
)

const systemPrompt = `You write structured knowledge-base entries for one reader.
Answer with a single JSON object that matches the schema you are given and nothing else.
Keep the order of sections, key points and code examples as they appear in the source.
Tailor userRelevance, practicalApplication and the relevance score (0 to 10) to the reader.
If a source cannot be read or is empty, add an entry to "errors" with its url instead of guessing.`

// Prompt returns the system and user messages for input as seen by profile.
func Prompt(input domain.SummaryInput, profile domain.Profile) (string, string) {
	var b strings.Builder

	b.WriteString("## Reader\n")
	if role := strings.TrimSpace(profile.Role); role != "" {
		fmt.Fprintf(&b, "Role: %s\n", role)
	}
	fmt.Fprintf(&b, "About: %s\n\n", strings.TrimSpace(profile.Description))

	switch input.Kind {
	case domain.SubjectKindTopic:
		fmt.Fprintf(&b, "## Topic\n%s\n\nSummarize what the search results below say about this topic. Set \"topic\" to it and \"url\" to the most useful result.\n\n", input.Subject)
	default:
		fmt.Fprintf(&b, "## Page\n%s\n\nSummarize the page below. Set \"url\" to this address.\n\n", input.Subject)
	}

	for i, source := range input.Sources {
		fmt.Fprintf(&b, "### Source %d: %s\n", i+1, strings.TrimSpace(source.Title))
		fmt.Fprintf(&b, "URL: %s\n", source.URL)
		if source.Language != "" {
			fmt.Fprintf(&b, "Language: %s\n", source.Language)
		}
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(source.Content))
		b.WriteString("\n\n")
	}

	b.WriteString("## Output schema\n")
	b.WriteString(SchemaJSON())
	b.WriteString("\n")

	return systemPrompt, b.String()
}

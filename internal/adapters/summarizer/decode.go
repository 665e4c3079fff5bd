package summarizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/kb-summarizer/internal/domain"
)

// Decode parses a model answer into a summary. Unknown fields, trailing data and
// missing required fields are reported as domain.ErrInvalidSummaryShape.
func Decode(raw string) (domain.SummaryResult, error) {
	text := stripFence(raw)
	if text == "" {
		return domain.SummaryResult{}, fmt.Errorf("%w: empty answer", domain.ErrInvalidSummaryShape)
	}

	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.DisallowUnknownFields()

	var summary domain.SummaryResult
	if err := decoder.Decode(&summary); err != nil {
		return domain.SummaryResult{}, fmt.Errorf("%w: %w", domain.ErrInvalidSummaryShape, err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return domain.SummaryResult{}, fmt.Errorf("%w: trailing data after object", domain.ErrInvalidSummaryShape)
	}

	if err := validate(summary); err != nil {
		return domain.SummaryResult{}, fmt.Errorf("%w: %w", domain.ErrInvalidSummaryShape, err)
	}

	return normalize(summary), nil
}

// Models sometimes wrap JSON in a markdown fence even when asked not to.
func stripFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if newline := strings.IndexByte(text, '\n'); newline >= 0 {
		text = text[newline+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}

func validate(summary domain.SummaryResult) error {
	var errs []error

	for i, section := range summary.Sections {
		if strings.TrimSpace(section.Title) == "" {
			errs = append(errs, fmt.Errorf("sections[%d].title is required", i))
		}
		for j, example := range section.CodeExamples {
			if example.Code == "" {
				errs = append(errs, fmt.Errorf("sections[%d].codeExamples[%d].code is required", i, j))
			}
			if strings.TrimSpace(example.Language) == "" {
				errs = append(errs, fmt.Errorf("sections[%d].codeExamples[%d].language is required", i, j))
			}
		}
	}

	if app := summary.PracticalApplication; app != nil && strings.TrimSpace(app.RelevanceSummary) == "" {
		errs = append(errs, errors.New("practicalApplication.relevanceSummary is required"))
	}

	for i, summaryErr := range summary.Errors {
		if strings.TrimSpace(summaryErr.Error) == "" {
			errs = append(errs, fmt.Errorf("errors[%d].error is required", i))
		}
	}

	return errors.Join(errs...)
}

func normalize(summary domain.SummaryResult) domain.SummaryResult {
	if summary.Tags == nil {
		summary.Tags = []string{}
	}
	if summary.Sections == nil {
		summary.Sections = []domain.Section{}
	}
	if summary.Errors == nil {
		summary.Errors = []domain.SummaryError{}
	}

	return summary
}

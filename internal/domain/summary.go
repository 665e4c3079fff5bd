package domain

import "strings"

type SummaryResult struct {
	URL                  string                `json:"url"`
	Topic                string                `json:"topic,omitempty"`
	Title                string                `json:"title,omitempty"`
	Summary              string                `json:"summary,omitempty"`
	Tags                 []string              `json:"tags"`
	Sections             []Section             `json:"sections"`
	PracticalApplication *PracticalApplication `json:"practicalApplication,omitempty"`
	Errors               []SummaryError        `json:"errors"`
}

type Section struct {
	Title         string        `json:"title"`
	Summary       string        `json:"summary"`
	CodeExamples  []CodeExample `json:"codeExamples"`
	KeyPoints     []string      `json:"keyPoints"`
	UserRelevance string        `json:"userRelevance,omitempty"`
	ReferenceURLs []string      `json:"referenceUrls"`
}

type CodeExample struct {
	Code        string `json:"code"`
	Language    string `json:"language"`
	Description string `json:"description,omitempty"`
}

type PracticalApplication struct {
	// RelevanceScore is meant to fall in 0-10 but nothing enforces it.
	RelevanceScore   float64  `json:"relevanceScore"`
	RelevanceSummary string   `json:"relevanceSummary"`
	KeyTakeaways     []string `json:"keyTakeaways"`
	ActionableItems  []string `json:"actionableItems"`
	RelatedConcepts  []string `json:"relatedConcepts"`
}

type SummaryError struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

func (s SummaryResult) HasErrors() bool {
	return len(s.Errors) > 0
}

// DisplayTitle returns the title, then the topic, then a title synthesized from the URL.
func (s SummaryResult) DisplayTitle() string {
	if title := strings.TrimSpace(s.Title); title != "" {
		return title
	}
	if topic := strings.TrimSpace(s.Topic); topic != "" {
		return topic
	}

	return "Summary from " + s.URL
}

package domain

import (
	"fmt"
	"net/url"
	"strings"
)

type SubjectKind string

const (
	SubjectKindAuto  SubjectKind = "auto"
	SubjectKindURL   SubjectKind = "url"
	SubjectKindTopic SubjectKind = "topic"
)

func ParseSubjectKind(raw string) (SubjectKind, error) {
	kind := SubjectKind(strings.ToLower(strings.TrimSpace(raw)))
	switch kind {
	case "":
		return SubjectKindAuto, nil
	case SubjectKindAuto, SubjectKindURL, SubjectKindTopic:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: kind %q", ErrUnsupportedSubject, raw)
	}
}

// Resolve turns auto into url or topic depending on whether subject is an absolute
// http(s) URL.
func (k SubjectKind) Resolve(subject string) SubjectKind {
	if k != SubjectKindAuto && k != "" {
		return k
	}
	if IsWebURL(subject) {
		return SubjectKindURL
	}

	return SubjectKindTopic
}

func IsWebURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// SourceDocument is one piece of retrieved content handed to the summarizer.
type SourceDocument struct {
	URL      string
	Title    string
	Content  string
	Language string
}

type SummaryInput struct {
	Subject string
	Kind    SubjectKind
	Sources []SourceDocument
}

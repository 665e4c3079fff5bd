package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFingerprintIsDeterministic(t *testing.T) {
	t.Parallel()

	first := ComputeFingerprint("https://example.com/post", "I write Go services")
	second := ComputeFingerprint("https://example.com/post", "I write Go services")

	assert.Equal(t, first, second)
	assert.Len(t, first.String(), 64)
}

func TestComputeFingerprintSeparatesConcatenationSplits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		left  [2]string
		right [2]string
	}{
		{name: "shifted boundary", left: [2]string{"ab", "c"}, right: [2]string{"a", "bc"}},
		{name: "empty subject", left: [2]string{"", "abc"}, right: [2]string{"abc", ""}},
		{name: "different profile", left: [2]string{"go", "backend"}, right: [2]string{"go", "frontend"}},
		{name: "swapped", left: [2]string{"x", "y"}, right: [2]string{"y", "x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t,
				ComputeFingerprint(tc.left[0], tc.left[1]),
				ComputeFingerprint(tc.right[0], tc.right[1]),
			)
		})
	}
}

func TestSummaryResultDisplayTitleFallbacks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "X", SummaryResult{URL: "https://x", Title: "X", Topic: "T"}.DisplayTitle())
	assert.Equal(t, "T", SummaryResult{URL: "https://x", Topic: "T"}.DisplayTitle())
	assert.Equal(t, "Summary from https://x", SummaryResult{URL: "https://x"}.DisplayTitle())
	assert.Equal(t, "Summary from https://x", SummaryResult{URL: "https://x", Title: "  "}.DisplayTitle())
}

func TestSummaryResultHasErrors(t *testing.T) {
	t.Parallel()

	assert.False(t, SummaryResult{URL: "https://x"}.HasErrors())
	assert.False(t, SummaryResult{URL: "https://x", Errors: []SummaryError{}}.HasErrors())
	assert.True(t, SummaryResult{URL: "https://x", Errors: []SummaryError{{URL: "https://x", Error: "blocked"}}}.HasErrors())
}

func TestSubjectKindResolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SubjectKindURL, SubjectKindAuto.Resolve("https://go.dev/blog"))
	assert.Equal(t, SubjectKindTopic, SubjectKindAuto.Resolve("structured concurrency in go"))
	assert.Equal(t, SubjectKindTopic, SubjectKindAuto.Resolve("ftp://example.com/file"))
	assert.Equal(t, SubjectKindTopic, SubjectKindTopic.Resolve("https://go.dev"))

	kind, err := ParseSubjectKind("URL")
	require.NoError(t, err)
	assert.Equal(t, SubjectKindURL, kind)

	_, err = ParseSubjectKind("podcast")
	require.ErrorIs(t, err, ErrUnsupportedSubject)
}

func TestCountBlocksIncludesChildren(t *testing.T) {
	t.Parallel()

	blocks := []Block{
		Callout{Text: "Source", Children: []Block{Embed{URL: "https://x"}}},
		Heading{Level: 3, Text: "Key Takeaways", Children: []Block{BulletedItem{Text: "a"}, BulletedItem{Text: "b"}}},
		Divider{},
	}

	assert.Equal(t, 6, CountBlocks(blocks))
}

func TestCanonicalPageURLStripsSeparators(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://www.notion.so/1a2b3c4d5e6f47a8b9c0d1e2f3a4b5c6",
		CanonicalPageURL("1a2b3c4d-5e6f-47a8-b9c0-d1e2f3a4b5c6"),
	)
}

package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/bnema/kb-summarizer/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pipelineMocks struct {
	profiles   *mocks.MockProfileRepository
	cache      *mocks.MockSummaryCache
	fetcher    *mocks.MockContentFetcher
	searcher   *mocks.MockSearcher
	summarizer *mocks.MockSummarizer
	sink       *mocks.MockSink
}

func newPipeline(t *testing.T) (*Service, pipelineMocks) {
	t.Helper()

	m := pipelineMocks{
		profiles:   mocks.NewMockProfileRepository(t),
		cache:      mocks.NewMockSummaryCache(t),
		fetcher:    mocks.NewMockContentFetcher(t),
		searcher:   mocks.NewMockSearcher(t),
		summarizer: mocks.NewMockSummarizer(t),
		sink:       mocks.NewMockSink(t),
	}

	return NewService(m.profiles, m.cache, m.fetcher, m.searcher, m.summarizer, zerolog.Nop()), m
}

var workProfile = domain.Profile{Name: "work", Role: "Software engineer", Description: "Go backend developer"}

func TestServiceProcessURLCacheMiss(t *testing.T) {
	service, m := newPipeline(t)

	subject := "https://example.com/post"
	key := domain.ComputeFingerprint(subject, workProfile.Description)
	doc := domain.SourceDocument{URL: subject, Title: "Post", Content: "body", Language: "english"}
	generated := domain.SummaryResult{Title: "Post", Summary: "A post.", Tags: []string{"go"}}
	expected := generated
	expected.URL = subject

	m.profiles.EXPECT().GetByName(mockAnyContext(), domain.ProfileName("work")).Return(workProfile, nil)
	m.cache.EXPECT().Get(mockAnyContext(), key).Return(domain.SummaryResult{}, false)
	m.fetcher.EXPECT().Fetch(mockAnyContext(), subject).Return(doc, nil)
	m.summarizer.EXPECT().Summarize(mockAnyContext(), domain.SummaryInput{
		Subject: subject,
		Kind:    domain.SubjectKindURL,
		Sources: []domain.SourceDocument{doc},
	}, workProfile).Return(generated, nil)
	m.cache.EXPECT().Put(mockAnyContext(), key, expected).Return()
	m.sink.EXPECT().Publish(mockAnyContext(), expected, mock.Anything).
		Return(domain.PublishReceipt{SubPageID: "page-1", Location: "https://www.notion.so/page1"}, nil)

	outcome, err := service.Process(context.Background(), Request{
		ProfileName: "work",
		Subject:     subject,
		Kind:        domain.SubjectKindAuto,
		Sink:        m.sink,
	})
	require.NoError(t, err)

	assert.False(t, outcome.CacheHit)
	assert.Equal(t, key, outcome.Fingerprint)
	assert.Equal(t, expected, outcome.Summary)
	assert.Equal(t, "page-1", outcome.Receipt.SubPageID)
	assert.Len(t, outcome.Blocks, 4)
}

func TestServiceProcessCacheHitSkipsSummarizer(t *testing.T) {
	service, m := newPipeline(t)

	subject := "https://example.com/post"
	key := domain.ComputeFingerprint(subject, workProfile.Description)
	cached := domain.SummaryResult{URL: subject, Title: "Cached"}

	m.profiles.EXPECT().GetByName(mockAnyContext(), domain.ProfileName("work")).Return(workProfile, nil)
	m.cache.EXPECT().Get(mockAnyContext(), key).Return(cached, true)
	m.sink.EXPECT().Publish(mockAnyContext(), cached, mock.Anything).Return(domain.PublishReceipt{SubPageID: "page-2"}, nil)

	outcome, err := service.Process(context.Background(), Request{ProfileName: "work", Subject: subject, Sink: m.sink})
	require.NoError(t, err)
	assert.True(t, outcome.CacheHit)
	assert.Equal(t, cached, outcome.Summary)
}

func TestServiceProcessDifferentProfileMissesCache(t *testing.T) {
	service, m := newPipeline(t)

	subject := "https://example.com/post"
	other := domain.Profile{Name: "research", Description: "ML researcher"}
	key := domain.ComputeFingerprint(subject, other.Description)
	require.NotEqual(t, domain.ComputeFingerprint(subject, workProfile.Description), key)

	m.profiles.EXPECT().GetByName(mockAnyContext(), domain.ProfileName("research")).Return(other, nil)
	m.cache.EXPECT().Get(mockAnyContext(), key).Return(domain.SummaryResult{}, false)
	m.fetcher.EXPECT().Fetch(mockAnyContext(), subject).Return(domain.SourceDocument{URL: subject}, nil)
	m.summarizer.EXPECT().Summarize(mockAnyContext(), mock.Anything, other).Return(domain.SummaryResult{URL: subject}, nil)
	m.cache.EXPECT().Put(mockAnyContext(), key, domain.SummaryResult{URL: subject}).Return()
	m.sink.EXPECT().Publish(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.PublishReceipt{}, nil)

	_, err := service.Process(context.Background(), Request{ProfileName: "research", Subject: subject, Sink: m.sink})
	require.NoError(t, err)
}

func TestServiceProcessSkipCacheStillRefreshesEntry(t *testing.T) {
	service, m := newPipeline(t)

	subject := "https://example.com/post"
	key := domain.ComputeFingerprint(subject, workProfile.Description)
	fresh := domain.SummaryResult{URL: subject, Title: "Fresh"}

	m.profiles.EXPECT().GetByName(mockAnyContext(), domain.ProfileName("work")).Return(workProfile, nil)
	m.fetcher.EXPECT().Fetch(mockAnyContext(), subject).Return(domain.SourceDocument{URL: subject}, nil)
	m.summarizer.EXPECT().Summarize(mockAnyContext(), mock.Anything, workProfile).Return(fresh, nil)
	m.cache.EXPECT().Put(mockAnyContext(), key, fresh).Return()
	m.sink.EXPECT().Publish(mockAnyContext(), fresh, mock.Anything).Return(domain.PublishReceipt{}, nil)

	outcome, err := service.Process(context.Background(), Request{ProfileName: "work", Subject: subject, Sink: m.sink, SkipCache: true})
	require.NoError(t, err)
	assert.False(t, outcome.CacheHit)
	m.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestServiceProcessTopicInheritsSubject(t *testing.T) {
	service, m := newPipeline(t)

	subject := "rust async runtimes"
	results := make([]domain.SourceDocument, 0, 12)
	for i := range 12 {
		results = append(results, domain.SourceDocument{URL: fmt.Sprintf("https://r%d.example", i), Title: "r", Content: "c"})
	}

	m.profiles.EXPECT().GetByName(mockAnyContext(), domain.ProfileName("work")).Return(workProfile, nil)
	m.cache.EXPECT().Get(mockAnyContext(), mock.Anything).Return(domain.SummaryResult{}, false)
	m.searcher.EXPECT().Search(mockAnyContext(), subject).Return(results, nil)
	m.summarizer.EXPECT().Summarize(mockAnyContext(), mock.MatchedBy(func(input domain.SummaryInput) bool {
		return input.Kind == domain.SubjectKindTopic && len(input.Sources) == MaxSearchResults
	}), workProfile).Return(domain.SummaryResult{Title: "Runtimes"}, nil)
	m.cache.EXPECT().Put(mockAnyContext(), mock.Anything, mock.Anything).Return()
	m.sink.EXPECT().Publish(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.PublishReceipt{}, nil)

	outcome, err := service.Process(context.Background(), Request{ProfileName: "work", Subject: subject, Kind: domain.SubjectKindAuto, Sink: m.sink})
	require.NoError(t, err)
	assert.Equal(t, "https://r0.example", outcome.Summary.URL)
	assert.Equal(t, subject, outcome.Summary.Topic)
}

func TestServiceProcessEmptySearchResults(t *testing.T) {
	service, m := newPipeline(t)

	m.profiles.EXPECT().GetByName(mockAnyContext(), domain.ProfileName("work")).Return(workProfile, nil)
	m.cache.EXPECT().Get(mockAnyContext(), mock.Anything).Return(domain.SummaryResult{}, false)
	m.searcher.EXPECT().Search(mockAnyContext(), "obscure").Return(nil, nil)

	_, err := service.Process(context.Background(), Request{ProfileName: "work", Subject: "obscure", Kind: domain.SubjectKindTopic, Sink: m.sink})
	require.ErrorIs(t, err, domain.ErrEmptySearchResults)
}

func TestServiceProcessErroneousSummaryIsNotCachedOrPublished(t *testing.T) {
	service, m := newPipeline(t)

	subject := "https://example.com/broken"
	bad := domain.SummaryResult{URL: subject, Errors: []domain.SummaryError{{URL: subject, Error: "blocked"}}}

	m.profiles.EXPECT().GetByName(mockAnyContext(), domain.ProfileName("work")).Return(workProfile, nil)
	m.cache.EXPECT().Get(mockAnyContext(), mock.Anything).Return(domain.SummaryResult{}, false)
	m.fetcher.EXPECT().Fetch(mockAnyContext(), subject).Return(domain.SourceDocument{URL: subject}, nil)
	m.summarizer.EXPECT().Summarize(mockAnyContext(), mock.Anything, workProfile).Return(bad, nil)

	outcome, err := service.Process(context.Background(), Request{ProfileName: "work", Subject: subject, Sink: m.sink})
	require.ErrorIs(t, err, domain.ErrErroneousSummary)
	assert.Equal(t, bad, outcome.Summary)
	m.cache.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	m.sink.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceProcessUnknownProfile(t *testing.T) {
	service, m := newPipeline(t)

	m.profiles.EXPECT().GetByName(mockAnyContext(), domain.ProfileName("ghost")).
		Return(domain.Profile{}, fmt.Errorf("%w: %q", domain.ErrProfileNotFound, "ghost"))

	_, err := service.Process(context.Background(), Request{ProfileName: "ghost", Subject: "https://x.example", Sink: m.sink})
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestServiceProcessRejectsNonURLForURLKind(t *testing.T) {
	service, m := newPipeline(t)

	m.profiles.EXPECT().GetByName(mockAnyContext(), domain.ProfileName("work")).Return(workProfile, nil)

	_, err := service.Process(context.Background(), Request{ProfileName: "work", Subject: "not a url", Kind: domain.SubjectKindURL, Sink: m.sink})
	require.ErrorIs(t, err, domain.ErrUnsupportedSubject)
}

func TestServiceProcessValidatesRequest(t *testing.T) {
	service, m := newPipeline(t)

	_, err := service.Process(context.Background(), Request{ProfileName: "work", Subject: "  ", Sink: m.sink})
	require.ErrorIs(t, err, domain.ErrUnsupportedSubject)

	_, err = service.Process(context.Background(), Request{ProfileName: "work", Subject: "topic"})
	require.ErrorIs(t, err, ErrNoSink)
}

func TestServiceProcessSurfacesSummarizerAndSinkErrors(t *testing.T) {
	t.Run("summarizer", func(t *testing.T) {
		service, m := newPipeline(t)
		subject := "https://example.com/post"

		m.profiles.EXPECT().GetByName(mockAnyContext(), domain.ProfileName("work")).Return(workProfile, nil)
		m.cache.EXPECT().Get(mockAnyContext(), mock.Anything).Return(domain.SummaryResult{}, false)
		m.fetcher.EXPECT().Fetch(mockAnyContext(), subject).Return(domain.SourceDocument{URL: subject}, nil)
		m.summarizer.EXPECT().Summarize(mockAnyContext(), mock.Anything, workProfile).Return(domain.SummaryResult{}, domain.ErrInvalidSummaryShape)

		_, err := service.Process(context.Background(), Request{ProfileName: "work", Subject: subject, Sink: m.sink})
		require.ErrorIs(t, err, domain.ErrInvalidSummaryShape)
		assert.ErrorContains(t, err, "generate summary")
	})

	t.Run("sink", func(t *testing.T) {
		service, m := newPipeline(t)
		subject := "https://example.com/post"
		sinkErr := errors.New("status 502: bad gateway")

		m.profiles.EXPECT().GetByName(mockAnyContext(), domain.ProfileName("work")).Return(workProfile, nil)
		m.cache.EXPECT().Get(mockAnyContext(), mock.Anything).Return(domain.SummaryResult{URL: subject}, true)
		m.sink.EXPECT().Publish(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.PublishReceipt{}, sinkErr)

		_, err := service.Process(context.Background(), Request{ProfileName: "work", Subject: subject, Sink: m.sink})
		require.ErrorIs(t, err, sinkErr)
		assert.ErrorContains(t, err, "publish summary")
	})
}

func mockAnyContext() interface{} {
	return mock.Anything
}

package service

import (
	"Limelight/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessionSet struct {
	seen map[string]bool
}

func newMemorySessionSet() *memorySessionSet {
	return &memorySessionSet{seen: make(map[string]bool)}
}

func (s *memorySessionSet) Add(_ context.Context, submissionID string) (bool, error) {
	if s.seen[submissionID] {
		return false, nil
	}
	s.seen[submissionID] = true
	return true, nil
}

type memoryCounter struct {
	counts map[string]int64
}

func newMemoryCounter() *memoryCounter {
	return &memoryCounter{counts: make(map[string]int64)}
}

func (c *memoryCounter) Incr(_ context.Context, submissionID string) error {
	c.counts[submissionID]++
	return nil
}

func (c *memoryCounter) Pending(_ context.Context, submissionID string) (int64, error) {
	return c.counts[submissionID], nil
}

func newImpressionFixture() (*fakeSubmissionRepo, *memoryCounter, ImpressionService) {
	submissionRepo := &fakeSubmissionRepo{submissions: map[string]*model.Submission{
		"sub-1": {ID: "sub-1", CampaignID: "camp-1", ImpressionCount: 10},
	}}
	counter := newMemoryCounter()
	svc := NewImpressionService(submissionRepo, counter)
	return submissionRepo, counter, svc
}

func TestRecordImpressionOncePerSession(t *testing.T) {
	_, counter, svc := newImpressionFixture()
	session := newMemorySessionSet()

	for i := 0; i < 5; i++ {
		err := svc.RecordImpression(context.Background(), "sub-1", session)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), counter.counts["sub-1"], "同一会话内重复上报只计一次")
}

func TestRecordImpressionAcrossSessions(t *testing.T) {
	_, counter, svc := newImpressionFixture()

	require.NoError(t, svc.RecordImpression(context.Background(), "sub-1", newMemorySessionSet()))
	require.NoError(t, svc.RecordImpression(context.Background(), "sub-1", newMemorySessionSet()))

	assert.Equal(t, int64(2), counter.counts["sub-1"])
}

func TestRecordImpressionUnknownSubmission(t *testing.T) {
	_, counter, svc := newImpressionFixture()

	err := svc.RecordImpression(context.Background(), "missing", newMemorySessionSet())
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
	assert.Empty(t, counter.counts)
}

func TestGetImpressionCountIncludesPending(t *testing.T) {
	_, _, svc := newImpressionFixture()
	session := newMemorySessionSet()

	require.NoError(t, svc.RecordImpression(context.Background(), "sub-1", session))

	count, err := svc.GetImpressionCount(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, int64(11), count, "已落库 10 次加待回写 1 次")
}

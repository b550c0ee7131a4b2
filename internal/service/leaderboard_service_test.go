package service

import (
	"Limelight/internal/model"
	"Limelight/internal/pkg/consts"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeaderboardFixture() (*fakeSubmissionRepo, *fakeSnapshotRepo, LeaderboardService) {
	submissionRepo := &fakeSubmissionRepo{submissions: map[string]*model.Submission{}}
	snapshotRepo := &fakeSnapshotRepo{}
	campaignRepo := &fakeCampaignRepo{campaigns: map[string]*model.Campaign{
		"camp-1": {ID: "camp-1", Status: consts.CampaignStatusActive},
	}}
	svc := NewLeaderboardService(submissionRepo, snapshotRepo, campaignRepo)
	return submissionRepo, snapshotRepo, svc
}

func addEntry(submissionRepo *fakeSubmissionRepo, snapshotRepo *fakeSnapshotRepo, subID, creatorID string, views int64, recordedAt time.Time) {
	submissionRepo.submissions[subID] = &model.Submission{
		ID:         subID,
		CampaignID: "camp-1",
		CreatorID:  creatorID,
		Status:     consts.SubmissionStatusApproved,
	}
	snapshotRepo.snapshots = append(snapshotRepo.snapshots, &model.MetricSnapshot{
		SubmissionID: subID,
		Views:        views,
		RecordedAt:   recordedAt,
	})
}

func TestGetLeaderboardOrdersByTotalViews(t *testing.T) {
	submissionRepo, snapshotRepo, svc := newLeaderboardFixture()
	now := time.Now()

	addEntry(submissionRepo, snapshotRepo, "sub-a", "creator-a", 300, now)
	addEntry(submissionRepo, snapshotRepo, "sub-b", "creator-b", 900, now)
	addEntry(submissionRepo, snapshotRepo, "sub-c", "creator-a", 200, now)

	entries, err := svc.GetLeaderboard(context.Background(), "camp-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "creator-b", entries[0].CreatorID)
	assert.Equal(t, int64(900), entries[0].TotalViews)
	assert.Equal(t, 1, entries[0].Rank)

	assert.Equal(t, "creator-a", entries[1].CreatorID)
	assert.Equal(t, int64(500), entries[1].TotalViews)
	assert.Equal(t, 2, entries[1].Submissions)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestGetLeaderboardTieBreakIsDeterministic(t *testing.T) {
	submissionRepo, snapshotRepo, svc := newLeaderboardFixture()
	now := time.Now()

	// 两位创作者总量持平，快照更早者在前，名次不并列
	addEntry(submissionRepo, snapshotRepo, "sub-a", "creator-late", 500, now)
	addEntry(submissionRepo, snapshotRepo, "sub-b", "creator-early", 500, now.Add(-time.Hour))

	for i := 0; i < 10; i++ {
		entries, err := svc.GetLeaderboard(context.Background(), "camp-1")
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "creator-early", entries[0].CreatorID)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "creator-late", entries[1].CreatorID)
		assert.Equal(t, 2, entries[1].Rank)
	}
}

func TestGetLeaderboardTieBreakByCreatorID(t *testing.T) {
	submissionRepo, snapshotRepo, svc := newLeaderboardFixture()
	now := time.Now()

	addEntry(submissionRepo, snapshotRepo, "sub-a", "creator-b", 500, now)
	addEntry(submissionRepo, snapshotRepo, "sub-b", "creator-a", 500, now)

	entries, err := svc.GetLeaderboard(context.Background(), "camp-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "creator-a", entries[0].CreatorID)
	assert.Equal(t, "creator-b", entries[1].CreatorID)
}

func TestGetLeaderboardSkipsSubmissionsWithoutSnapshot(t *testing.T) {
	submissionRepo, snapshotRepo, svc := newLeaderboardFixture()

	submissionRepo.submissions["sub-a"] = &model.Submission{
		ID: "sub-a", CampaignID: "camp-1", CreatorID: "creator-a", Status: consts.SubmissionStatusApproved,
	}
	addEntry(submissionRepo, snapshotRepo, "sub-b", "creator-b", 100, time.Now())

	entries, err := svc.GetLeaderboard(context.Background(), "camp-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "creator-b", entries[0].CreatorID)
}

func TestGetLeaderboardIgnoresPendingSubmissions(t *testing.T) {
	submissionRepo, snapshotRepo, svc := newLeaderboardFixture()
	now := time.Now()

	addEntry(submissionRepo, snapshotRepo, "sub-a", "creator-a", 300, now)
	submissionRepo.submissions["sub-a"].Status = consts.SubmissionStatusPending
	addEntry(submissionRepo, snapshotRepo, "sub-b", "creator-b", 100, now)

	entries, err := svc.GetLeaderboard(context.Background(), "camp-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "creator-b", entries[0].CreatorID)
}

func TestGetLeaderboardCampaignNotFound(t *testing.T) {
	_, _, svc := newLeaderboardFixture()

	_, err := svc.GetLeaderboard(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

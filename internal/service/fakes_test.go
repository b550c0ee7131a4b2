package service

import (
	"Limelight/internal/model"
	"Limelight/internal/pkg/consts"
	"Limelight/internal/platform"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
)

type fakeCampaignRepo struct {
	campaigns map[string]*model.Campaign
}

func (r *fakeCampaignRepo) GetCampaign(_ context.Context, id string) (*model.Campaign, error) {
	return r.campaigns[id], nil
}

func (r *fakeCampaignRepo) ListCampaigns(_ context.Context) ([]*model.Campaign, error) {
	list := make([]*model.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		list = append(list, c)
	}
	return list, nil
}

func (r *fakeCampaignRepo) ListSyncableCampaigns(_ context.Context, lookback time.Time) ([]*model.Campaign, error) {
	list := make([]*model.Campaign, 0)
	for _, c := range r.campaigns {
		if c.Status != consts.CampaignStatusDraft && !c.EndDate.Before(lookback) {
			list = append(list, c)
		}
	}
	return list, nil
}

type fakeSubmissionRepo struct {
	submissions map[string]*model.Submission
	impressions map[string]int64
}

func (r *fakeSubmissionRepo) CreateSubmission(_ context.Context, submission *model.Submission) error {
	for _, existing := range r.submissions {
		if existing.CampaignID == submission.CampaignID && existing.ContentURL == submission.ContentURL {
			return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
		}
	}
	if submission.ID == "" {
		submission.ID = "sub-" + submission.ContentURL
	}
	r.submissions[submission.ID] = submission
	return nil
}

func (r *fakeSubmissionRepo) GetSubmission(_ context.Context, id string) (*model.Submission, error) {
	return r.submissions[id], nil
}

func (r *fakeSubmissionRepo) ListByCampaign(_ context.Context, campaignID string) ([]*model.Submission, error) {
	list := make([]*model.Submission, 0)
	for _, s := range r.submissions {
		if s.CampaignID == campaignID {
			list = append(list, s)
		}
	}
	return list, nil
}

func (r *fakeSubmissionRepo) ListApprovedByCampaign(_ context.Context, campaignID string) ([]*model.Submission, error) {
	list := make([]*model.Submission, 0)
	for _, s := range r.submissions {
		if s.CampaignID == campaignID && s.Status == consts.SubmissionStatusApproved {
			list = append(list, s)
		}
	}
	return list, nil
}

func (r *fakeSubmissionRepo) ListApproved(_ context.Context) ([]*model.Submission, error) {
	list := make([]*model.Submission, 0)
	for _, s := range r.submissions {
		if s.Status == consts.SubmissionStatusApproved {
			list = append(list, s)
		}
	}
	return list, nil
}

func (r *fakeSubmissionRepo) UpdateStatus(_ context.Context, id string, status string) error {
	if s, ok := r.submissions[id]; ok {
		s.Status = status
	}
	return nil
}

func (r *fakeSubmissionRepo) AddImpressions(_ context.Context, id string, delta int64) error {
	if r.impressions == nil {
		r.impressions = make(map[string]int64)
	}
	r.impressions[id] += delta
	if s, ok := r.submissions[id]; ok {
		s.ImpressionCount += delta
	}
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*model.SocialAccount
}

func (r *fakeAccountRepo) GetAccount(_ context.Context, id string) (*model.SocialAccount, error) {
	return r.accounts[id], nil
}

func (r *fakeAccountRepo) GetAccountsByUser(_ context.Context, userID string) ([]*model.SocialAccount, error) {
	list := make([]*model.SocialAccount, 0)
	for _, a := range r.accounts {
		if a.UserID == userID {
			list = append(list, a)
		}
	}
	return list, nil
}

type fakeSnapshotRepo struct {
	snapshots []*model.MetricSnapshot
	failFor   string
}

func (r *fakeSnapshotRepo) CreateSnapshot(_ context.Context, snapshot *model.MetricSnapshot) error {
	if r.failFor != "" && snapshot.SubmissionID == r.failFor {
		return errors.New("db write error")
	}
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *fakeSnapshotRepo) GetLatestBySubmission(_ context.Context, submissionID string) (*model.MetricSnapshot, error) {
	var latest *model.MetricSnapshot
	for _, s := range r.snapshots {
		if s.SubmissionID != submissionID {
			continue
		}
		if latest == nil || !s.RecordedAt.Before(latest.RecordedAt) {
			latest = s
		}
	}
	return latest, nil
}

func (r *fakeSnapshotRepo) ListBySubmission(_ context.Context, submissionID string) ([]*model.MetricSnapshot, error) {
	list := make([]*model.MetricSnapshot, 0)
	for _, s := range r.snapshots {
		if s.SubmissionID == submissionID {
			list = append(list, s)
		}
	}
	return list, nil
}

func (r *fakeSnapshotRepo) ListLatestBySubmissions(_ context.Context, submissionIDs []string) (map[string]*model.MetricSnapshot, error) {
	latest := make(map[string]*model.MetricSnapshot, len(submissionIDs))
	for _, id := range submissionIDs {
		s, _ := r.GetLatestBySubmission(context.Background(), id)
		if s != nil {
			latest[id] = s
		}
	}
	return latest, nil
}

func (r *fakeSnapshotRepo) countBySubmission(submissionID string) int {
	count := 0
	for _, s := range r.snapshots {
		if s.SubmissionID == submissionID {
			count++
		}
	}
	return count
}

type fakeMetricsClient struct {
	metrics *platform.Metrics
	err     error
	calls   int
}

func (c *fakeMetricsClient) FetchMetrics(_ context.Context, _, _ string) (*platform.Metrics, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.metrics, nil
}

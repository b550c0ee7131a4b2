package service

import (
	"Limelight/internal/api/dto"
	"Limelight/internal/model"
	"Limelight/internal/repository"
	"context"
	"sort"
	"time"
)

type LeaderboardService interface {
	// GetLeaderboard 计算创作者排行榜，campaignID 为空表示全站范围
	GetLeaderboard(ctx context.Context, campaignID string) ([]*dto.LeaderboardEntryDTO, error)
}

type leaderboardServiceImpl struct {
	submissionRepo repository.SubmissionRepo
	snapshotRepo   repository.MetricSnapshotRepo
	campaignRepo   repository.CampaignRepo
}

func NewLeaderboardService(
	submissionRepo repository.SubmissionRepo,
	snapshotRepo repository.MetricSnapshotRepo,
	campaignRepo repository.CampaignRepo,
) LeaderboardService {
	return &leaderboardServiceImpl{
		submissionRepo: submissionRepo,
		snapshotRepo:   snapshotRepo,
		campaignRepo:   campaignRepo,
	}
}

// creatorTotal 单个创作者的聚合中间态。
// earliest 取该创作者名下各最新快照中最早的 recorded_at，用作排序决胜
type creatorTotal struct {
	creatorID   string
	totalViews  int64
	submissions int
	earliest    time.Time
}

// GetLeaderboard 实现：每次读取都基于当前快照状态全量重算，不依赖缓存。
// 每条投稿取最新快照（锁定快照必为最后一条），按创作者汇总播放量后
// 降序排名；总量相同时最新快照 recorded_at 更早者在前，排名不并列
func (s *leaderboardServiceImpl) GetLeaderboard(ctx context.Context, campaignID string) ([]*dto.LeaderboardEntryDTO, error) {
	var submissions []*model.Submission
	var err error

	if campaignID != "" {
		campaign, cerr := s.campaignRepo.GetCampaign(ctx, campaignID)
		if cerr != nil {
			return nil, cerr
		}
		if campaign == nil {
			return nil, ErrCampaignNotFound
		}
		submissions, err = s.submissionRepo.ListApprovedByCampaign(ctx, campaignID)
	} else {
		submissions, err = s.submissionRepo.ListApproved(ctx)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(submissions))
	for _, sub := range submissions {
		ids = append(ids, sub.ID)
	}

	latest, err := s.snapshotRepo.ListLatestBySubmissions(ctx, ids)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*creatorTotal)
	for _, sub := range submissions {
		snapshot, ok := latest[sub.ID]
		if !ok {
			continue
		}

		t, exists := totals[sub.CreatorID]
		if !exists {
			t = &creatorTotal{creatorID: sub.CreatorID, earliest: snapshot.RecordedAt}
			totals[sub.CreatorID] = t
		}
		t.totalViews += snapshot.Views
		t.submissions++
		if snapshot.RecordedAt.Before(t.earliest) {
			t.earliest = snapshot.RecordedAt
		}
	}

	ranked := make([]*creatorTotal, 0, len(totals))
	for _, t := range totals {
		ranked = append(ranked, t)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].totalViews != ranked[j].totalViews {
			return ranked[i].totalViews > ranked[j].totalViews
		}
		if !ranked[i].earliest.Equal(ranked[j].earliest) {
			return ranked[i].earliest.Before(ranked[j].earliest)
		}
		return ranked[i].creatorID < ranked[j].creatorID
	})

	entries := make([]*dto.LeaderboardEntryDTO, 0, len(ranked))
	for i, t := range ranked {
		entries = append(entries, &dto.LeaderboardEntryDTO{
			CreatorID:   t.creatorID,
			TotalViews:  t.totalViews,
			Submissions: t.submissions,
			Rank:        i + 1,
		})
	}
	return entries, nil
}

package service

import (
	"Limelight/internal/model"
	"Limelight/internal/platform"
	"Limelight/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type MetricSyncService interface {
	// SyncSubmissionMetrics 同步单条投稿的指标快照
	SyncSubmissionMetrics(ctx context.Context, submissionID string) error
	// SyncCampaignMetrics 同步活动下全部已通过审核的投稿
	SyncCampaignMetrics(ctx context.Context, campaignID string) error
}

// metricsSource 指标来源：实时抓取 / 沿用上一快照 / 无历史数据
type metricsSource int

const (
	metricsFetched metricsSource = iota
	metricsStale
	metricsAbsent
)

func (s metricsSource) String() string {
	switch s {
	case metricsFetched:
		return "fetched"
	case metricsStale:
		return "stale"
	default:
		return "absent"
	}
}

type metricsOutcome struct {
	source  metricsSource
	metrics platform.Metrics
}

type metricSyncServiceImpl struct {
	submissionRepo repository.SubmissionRepo
	campaignRepo   repository.CampaignRepo
	accountRepo    repository.SocialAccountRepo
	snapshotRepo   repository.MetricSnapshotRepo
	clients        platform.Registry
	concurrency    int
}

func NewMetricSyncService(
	submissionRepo repository.SubmissionRepo,
	campaignRepo repository.CampaignRepo,
	accountRepo repository.SocialAccountRepo,
	snapshotRepo repository.MetricSnapshotRepo,
	clients platform.Registry,
	concurrency int,
) MetricSyncService {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &metricSyncServiceImpl{
		submissionRepo: submissionRepo,
		campaignRepo:   campaignRepo,
		accountRepo:    accountRepo,
		snapshotRepo:   snapshotRepo,
		clients:        clients,
		concurrency:    concurrency,
	}
}

// SyncSubmissionMetrics 实现：
// 已锁定的快照是终态，直接跳过；活动截止后写入的快照带锁定标记。
// 抓取失败时沿用上一快照数值（无历史则全零），指标只会被冻结，不会被捏造
func (s *metricSyncServiceImpl) SyncSubmissionMetrics(ctx context.Context, submissionID string) error {
	submission, err := s.submissionRepo.GetSubmission(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission == nil {
		return ErrSubmissionNotFound
	}

	campaign, err := s.campaignRepo.GetCampaign(ctx, submission.CampaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}

	previous, err := s.snapshotRepo.GetLatestBySubmission(ctx, submissionID)
	if err != nil {
		return err
	}
	if previous != nil && previous.IsLocked {
		log.InfoContext(ctx, "submission metrics already locked, skip",
			"submission_id", submissionID)
		return nil
	}

	now := time.Now()
	locked := campaign.Ended(now)

	outcome := s.resolveMetrics(ctx, submission, previous)
	m := outcome.metrics

	snapshot := &model.MetricSnapshot{
		SubmissionID:   submissionID,
		Views:          m.Views,
		Likes:          m.Likes,
		Comments:       m.Comments,
		Shares:         m.Shares,
		Impressions:    m.Impressions,
		EngagementRate: engagementRate(m.Views, m.Likes, m.Comments, m.Shares),
		RecordedAt:     now,
		IsLocked:       locked,
	}
	if locked {
		snapshot.LockedAt = &now
	}

	if err = s.snapshotRepo.CreateSnapshot(ctx, snapshot); err != nil {
		return err
	}

	log.InfoContext(ctx, "submission metrics synced",
		"submission_id", submissionID,
		"source", outcome.source.String(),
		"views", m.Views,
		"locked", locked)
	return nil
}

// SyncCampaignMetrics 实现：投稿之间互不依赖，按配置并发同步；
// 单条失败不会中断批次，仅持久化失败向调用方汇报
func (s *metricSyncServiceImpl) SyncCampaignMetrics(ctx context.Context, campaignID string) error {
	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}

	submissions, err := s.submissionRepo.ListApprovedByCampaign(ctx, campaignID)
	if err != nil {
		return err
	}

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, submission := range submissions {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := s.SyncSubmissionMetrics(gctx, submission.ID); err != nil {
				failed.Add(1)
				log.ErrorContext(gctx, "sync submission metrics error",
					"submission_id", submission.ID, "err", err)
			}
			return nil
		})
	}

	_ = g.Wait()

	log.InfoContext(ctx, "sync campaign metrics finished",
		"campaign_id", campaignID,
		"total", len(submissions),
		"failed", failed.Load())

	if n := failed.Load(); n > 0 {
		return &BatchSyncError{CampaignID: campaignID, Failed: int(n), Total: len(submissions)}
	}
	return nil
}

// resolveMetrics 抓取实时指标，不可用时回退到最近一次已知值。
// 令牌失效与平台接口异常都只降级，不向上传播
func (s *metricSyncServiceImpl) resolveMetrics(ctx context.Context, submission *model.Submission, previous *model.MetricSnapshot) metricsOutcome {
	fresh := s.fetchLiveMetrics(ctx, submission)
	if fresh != nil {
		return metricsOutcome{source: metricsFetched, metrics: *fresh}
	}

	if previous != nil {
		return metricsOutcome{
			source: metricsStale,
			metrics: platform.Metrics{
				Views:       previous.Views,
				Likes:       previous.Likes,
				Comments:    previous.Comments,
				Shares:      previous.Shares,
				Impressions: previous.Impressions,
			},
		}
	}

	return metricsOutcome{source: metricsAbsent}
}

func (s *metricSyncServiceImpl) fetchLiveMetrics(ctx context.Context, submission *model.Submission) *platform.Metrics {
	if submission.ContentID == "" {
		return nil
	}

	account, err := s.accountRepo.GetAccount(ctx, submission.SocialAccountID)
	if err != nil || account == nil || !account.Connected || account.AccessToken == "" {
		log.WarnContext(ctx, "social account unavailable for sync",
			"submission_id", submission.ID, "account_id", submission.SocialAccountID)
		return nil
	}

	client, ok := s.clients.Client(platform.Platform(submission.Platform))
	if !ok {
		return nil
	}

	metrics, err := client.FetchMetrics(ctx, account.AccessToken, submission.ContentID)
	if err != nil {
		if errors.Is(err, platform.ErrUnauthorized) {
			log.WarnContext(ctx, "platform token expired, account needs reconnect",
				"submission_id", submission.ID, "platform", submission.Platform)
		} else {
			log.WarnContext(ctx, "platform metrics fetch failed, fallback to last known",
				"submission_id", submission.ID, "platform", submission.Platform, "err", err)
		}
		return nil
	}
	return metrics
}

// engagementRate 互动率 = (点赞+评论+转发)/播放量*100，播放量为 0 时记 0
func engagementRate(views, likes, comments, shares int64) float64 {
	if views <= 0 {
		return 0
	}
	return float64(likes+comments+shares) / float64(views) * 100
}

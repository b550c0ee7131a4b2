package job

import (
	"Limelight/internal/api/config"
	"Limelight/internal/pkg/consts"
	"Limelight/internal/pkg/logger"
	"Limelight/internal/pkg/redis"
	"Limelight/internal/repository"
	"Limelight/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const metricSyncLockTTL = 30 * time.Minute

type CampaignMetricsJob struct {
	campaignRepo  repository.CampaignRepo
	metricSyncSvc service.MetricSyncService
}

func NewCampaignMetricsJob(
	campaignRepo repository.CampaignRepo,
	metricSyncSvc service.MetricSyncService,
) *CampaignMetricsJob {
	return &CampaignMetricsJob{
		campaignRepo:  campaignRepo,
		metricSyncSvc: metricSyncSvc,
	}
}

// Run 定时全量同步：挑出进行中以及刚截止不久的活动逐个同步。
// 分布式锁保证多实例部署时同一轮只有一个实例在跑
func (s *CampaignMetricsJob) Run() {
	traceID := "job-metric-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	locked, err := redis.TryLock(ctx, consts.MetricSyncLock, traceID, metricSyncLockTTL, 0)
	if err != nil {
		log.ErrorContext(ctx, "acquire metric sync lock error", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "metric sync already running elsewhere, skip")
		return
	}
	defer redis.UnLock(ctx, consts.MetricSyncLock, traceID)

	lookbackHours := config.Cfg.Sync.LookbackHours
	if lookbackHours <= 0 {
		lookbackHours = 24
	}
	lookback := time.Now().Add(-time.Duration(lookbackHours) * time.Hour)

	campaigns, err := s.campaignRepo.ListSyncableCampaigns(ctx, lookback)
	if err != nil {
		log.ErrorContext(ctx, "list syncable campaigns error", "err", err)
		return
	}

	failedCampaigns := 0
	for _, campaign := range campaigns {
		if err = s.metricSyncSvc.SyncCampaignMetrics(ctx, campaign.ID); err != nil {
			failedCampaigns++
			log.ErrorContext(ctx, "sync campaign metrics error",
				"campaign_id", campaign.ID, "err", err)
		}
	}

	log.InfoContext(ctx, "sync campaign metrics job finished",
		"campaign_count", len(campaigns),
		"failed_campaigns", failedCampaigns)
}

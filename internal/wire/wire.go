package wire

import (
	"Limelight/internal/api"
	"Limelight/internal/api/config"
	"Limelight/internal/api/handler"
	"Limelight/internal/job"
	"Limelight/internal/pkg/cron"
	"Limelight/internal/pkg/kafka"
	"Limelight/internal/platform"
	"Limelight/internal/platform/linkedin"
	"Limelight/internal/platform/tiktok"
	"Limelight/internal/platform/youtube"
	"Limelight/internal/repository"
	"Limelight/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	campaignRepo := repository.NewCampaignRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	accountRepo := repository.NewSocialAccountRepository(db)
	snapshotRepo := repository.NewMetricSnapshotRepository(db)

	clients := platform.Registry{
		platform.PlatformTikTok:   tiktok.NewClient(cfg.Platforms.TikTok),
		platform.PlatformLinkedIn: linkedin.NewClient(cfg.Platforms.LinkedIn),
		platform.PlatformYouTube:  youtube.NewClient(cfg.Platforms.YouTube),
	}

	campaignService := service.NewCampaignService(campaignRepo)
	submissionService := service.NewSubmissionService(submissionRepo, campaignRepo, accountRepo, snapshotRepo)
	metricSyncService := service.NewMetricSyncService(submissionRepo, campaignRepo, accountRepo, snapshotRepo, clients, cfg.Sync.Concurrency)
	leaderboardService := service.NewLeaderboardService(submissionRepo, snapshotRepo, campaignRepo)
	impressionService := service.NewImpressionService(submissionRepo, service.NewRedisImpressionCounter())

	handlers := &api.HandlersGroup{
		CampaignHandler:    handler.NewCampaignHandler(campaignService),
		SubmissionHandler:  handler.NewSubmissionHandler(submissionService, metricSyncService),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboardService),
		ImpressionHandler:  handler.NewImpressionHandler(impressionService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewCampaignMetricsJob(campaignRepo, metricSyncService),
		job.NewImpressionFlushJob(submissionRepo),
	)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, impressionService)
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}

package cron

import (
	"Limelight/internal/api/config"
	"Limelight/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine             *cron.Cron
	campaignMetricsJob *job.CampaignMetricsJob
	impressionFlushJob *job.ImpressionFlushJob
}

func NewCronManager(
	campaignMetricsJob *job.CampaignMetricsJob,
	impressionFlushJob *job.ImpressionFlushJob,
) *Manager {
	return &Manager{
		engine:             cron.New(cron.WithSeconds()),
		campaignMetricsJob: campaignMetricsJob,
		impressionFlushJob: impressionFlushJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	syncCfg := config.Cfg.Sync

	metricSpec := syncCfg.Cron
	if metricSpec == "" {
		metricSpec = "@hourly"
	}
	if _, err := s.engine.AddJob(metricSpec, s.campaignMetricsJob); err != nil {
		return err
	}

	flushSpec := syncCfg.ImpressionFlushCron
	if flushSpec == "" {
		flushSpec = "@every 5m"
	}
	if _, err := s.engine.AddJob(flushSpec, s.impressionFlushJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}

package api

import "Limelight/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	CampaignHandler    *handler.CampaignHandler
	SubmissionHandler  *handler.SubmissionHandler
	LeaderboardHandler *handler.LeaderboardHandler
	ImpressionHandler  *handler.ImpressionHandler
}

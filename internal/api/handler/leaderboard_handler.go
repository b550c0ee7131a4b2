package handler

import (
	"Limelight/internal/pkg/response"
	"Limelight/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardSvc: leaderboardSvc}
}

// GetGlobal 全站排行榜
func (h *LeaderboardHandler) GetGlobal(c *gin.Context) {
	entries, err := h.leaderboardSvc.GetLeaderboard(c.Request.Context(), "")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

// GetByCampaign 活动排行榜
func (h *LeaderboardHandler) GetByCampaign(c *gin.Context) {
	campaignID := c.Param("campaign_id")
	if uuid.Validate(campaignID) != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	entries, err := h.leaderboardSvc.GetLeaderboard(c.Request.Context(), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

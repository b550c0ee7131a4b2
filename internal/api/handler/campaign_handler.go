package handler

import (
	"Limelight/internal/pkg/response"
	"Limelight/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CampaignHandler struct {
	campaignSvc service.CampaignService
}

func NewCampaignHandler(campaignSvc service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignSvc: campaignSvc}
}

// List 活动列表
func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.campaignSvc.GetCampaigns(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaigns)
}

// Get 活动详情
func (h *CampaignHandler) Get(c *gin.Context) {
	campaignID := c.Param("campaign_id")
	if uuid.Validate(campaignID) != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	campaign, err := h.campaignSvc.GetCampaign(c.Request.Context(), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaign)
}

package handler

import (
	"Limelight/internal/api/dto"
	"Limelight/internal/pkg/response"
	"Limelight/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubmissionHandler struct {
	submissionSvc service.SubmissionService
	metricSyncSvc service.MetricSyncService
}

func NewSubmissionHandler(
	submissionSvc service.SubmissionService,
	metricSyncSvc service.MetricSyncService,
) *SubmissionHandler {
	return &SubmissionHandler{
		submissionSvc: submissionSvc,
		metricSyncSvc: metricSyncSvc,
	}
}

// Create 创建投稿
func (h *SubmissionHandler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.SubmissionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	submission, err := h.submissionSvc.CreateSubmission(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, submission)
}

// UpdateStatus 审核投稿
func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	submissionID := c.Param("submission_id")
	if uuid.Validate(submissionID) != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.SubmissionStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.submissionSvc.UpdateStatus(c.Request.Context(), submissionID, req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetByCampaign 查询活动下的投稿列表
func (h *SubmissionHandler) GetByCampaign(c *gin.Context) {
	campaignID := c.Param("campaign_id")
	if uuid.Validate(campaignID) != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	submissions, err := h.submissionSvc.GetSubmissionsByCampaign(c.Request.Context(), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, submissions)
}

// Sync 手动触发单条投稿的指标同步
func (h *SubmissionHandler) Sync(c *gin.Context) {
	submissionID := c.Param("submission_id")
	if uuid.Validate(submissionID) != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := h.metricSyncSvc.SyncSubmissionMetrics(c.Request.Context(), submissionID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.SyncResultDTO{Success: true})
}

// SyncCampaign 手动触发活动下全部投稿的指标同步
func (h *SubmissionHandler) SyncCampaign(c *gin.Context) {
	campaignID := c.Param("campaign_id")
	if uuid.Validate(campaignID) != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	err := h.metricSyncSvc.SyncCampaignMetrics(c.Request.Context(), campaignID)
	if err != nil {
		var batchErr *service.BatchSyncError
		if errors.As(err, &batchErr) {
			// 批次已跑完，只是部分投稿失败，向调用方如实汇报
			response.Success(c, dto.SyncResultDTO{Success: false, Error: batchErr.Error()})
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, dto.SyncResultDTO{Success: true})
}

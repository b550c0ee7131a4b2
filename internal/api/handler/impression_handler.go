package handler

import (
	"Limelight/internal/pkg/response"
	"Limelight/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ImpressionHandler struct {
	impressionSvc service.ImpressionService
}

func NewImpressionHandler(impressionSvc service.ImpressionService) *ImpressionHandler {
	return &ImpressionHandler{impressionSvc: impressionSvc}
}

// Record 记录一次曝光，同一会话内重复上报不累加
func (h *ImpressionHandler) Record(c *gin.Context) {
	submissionID := c.Param("submission_id")
	if uuid.Validate(submissionID) != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	err := h.impressionSvc.RecordImpression(c.Request.Context(), submissionID, service.NewRedisSessionSet(sessionID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetCount 查询曝光总数，包含尚未回写数据库的增量
func (h *ImpressionHandler) GetCount(c *gin.Context) {
	submissionID := c.Param("submission_id")
	if uuid.Validate(submissionID) != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	count, err := h.impressionSvc.GetImpressionCount(c.Request.Context(), submissionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"impressions": count})
}

package service

import (
	"errors"
	"fmt"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrInvalidContentURL    = errors.New("无法识别的作品链接")
	ErrPlatformNotSupported = errors.New("暂不支持该平台的作品")
	ErrPlatformMismatch     = errors.New("作品平台与活动要求不符")
	ErrCampaignNotFound     = errors.New("活动不存在")
	ErrCampaignNotOpen      = errors.New("活动未开放投稿")
	ErrSubmissionNotFound   = errors.New("投稿不存在")
	ErrSubmissionDuplicate  = errors.New("该作品已投稿过本活动")
	ErrAccountNotFound      = errors.New("社交账号不存在")
	ErrAccountNotOwned      = errors.New("社交账号不属于当前用户")
	ErrAccountPlatform      = errors.New("社交账号与作品平台不一致")
	UnauthorizedError       = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

// BatchSyncError 批量同步中部分投稿持久化失败。
// 批次本身已跑完，失败的投稿等待下一轮重试
type BatchSyncError struct {
	CampaignID string
	Failed     int
	Total      int
}

func (e *BatchSyncError) Error() string {
	return fmt.Sprintf("活动 %s 共 %d 条投稿，%d 条同步失败", e.CampaignID, e.Total, e.Failed)
}

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrInvalidContentURL:    BadRequest,
	ErrPlatformNotSupported: BadRequest,
	ErrPlatformMismatch:     BadRequest,
	ErrCampaignNotFound:     NotFound,
	ErrCampaignNotOpen:      BadRequest,
	ErrSubmissionNotFound:   NotFound,
	ErrSubmissionDuplicate:  BadRequest,
	ErrAccountNotFound:      NotFound,
	ErrAccountNotOwned:      Unauthorized,
	ErrAccountPlatform:      BadRequest,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}

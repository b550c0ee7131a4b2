package dto

// SubmissionCreateDTO 投稿请求
type SubmissionCreateDTO struct {
	CampaignID      string `json:"campaignId" binding:"required,uuid"`
	SocialAccountID string `json:"socialAccountId" binding:"required,uuid"`
	ContentURL      string `json:"contentUrl" binding:"required,url"`
}

// SubmissionStatusDTO 审核状态变更请求
type SubmissionStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// SubmissionDTO 投稿视图，附带最新指标快照
type SubmissionDTO struct {
	ID              string             `json:"id"`
	CampaignID      string             `json:"campaignId"`
	CreatorID       string             `json:"creatorId"`
	ContentURL      string             `json:"contentUrl"`
	Platform        string             `json:"platform"`
	ContentID       string             `json:"contentId"`
	Status          string             `json:"status"`
	ImpressionCount int64              `json:"impressionCount"`
	SubmittedAt     string             `json:"submittedAt"`
	LatestSnapshot  *MetricSnapshotDTO `json:"latestSnapshot"`
}

// MetricSnapshotDTO 指标快照视图
type MetricSnapshotDTO struct {
	Views          int64   `json:"views"`
	Likes          int64   `json:"likes"`
	Comments       int64   `json:"comments"`
	Shares         int64   `json:"shares"`
	Impressions    int64   `json:"impressions"`
	EngagementRate float64 `json:"engagementRate"`
	RecordedAt     string  `json:"recordedAt"`
	IsLocked       bool    `json:"isLocked"`
}

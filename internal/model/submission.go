package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission 创作者投稿。创建后除审核状态与曝光计数外不再变更
type Submission struct {
	ID              string    `gorm:"type:char(36);primaryKey" json:"id"`
	CampaignID      string    `gorm:"type:char(36);not null;index:idx_campaign_url,unique" json:"campaignId"`
	CreatorID       string    `gorm:"type:char(36);not null;index" json:"creatorId"`
	SocialAccountID string    `gorm:"type:char(36);not null" json:"socialAccountId"`
	ContentURL      string    `gorm:"size:512;not null;index:idx_campaign_url,unique" json:"contentUrl"`
	Platform        string    `gorm:"size:32;not null" json:"platform"`
	ContentID       string    `gorm:"size:128" json:"contentId"`
	Status          string    `gorm:"size:32;not null;default:pending;index" json:"status"`
	ImpressionCount int64     `gorm:"not null;default:0" json:"impressionCount"`
	SubmittedAt     time.Time `gorm:"not null" json:"submittedAt"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Submission) TableName() string {
	return "submissions"
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialAccount 创作者绑定的平台账号。授权流程由外部系统维护，
// 核心侧只读 access_token，不修改连接状态
type SocialAccount struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID       string    `gorm:"type:char(36);not null;index" json:"userId"`
	Platform     string    `gorm:"size:32;not null" json:"platform"`
	AccessToken  string    `gorm:"size:512" json:"-"`
	RefreshToken string    `gorm:"size:512" json:"-"`
	Connected    bool      `gorm:"not null;default:false" json:"connected"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (SocialAccount) TableName() string {
	return "social_accounts"
}

func (a *SocialAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

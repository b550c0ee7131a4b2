package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Campaign struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Platform  string    `gorm:"size:32" json:"platform"`
	Type      string    `gorm:"size:32;not null;default:leaderboard" json:"type"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null;index" json:"endDate"`
	Status    string    `gorm:"size:32;not null;default:draft" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Ended 活动是否已截止。end_date 是指标锁定的唯一依据
func (c *Campaign) Ended(now time.Time) bool {
	return now.After(c.EndDate)
}

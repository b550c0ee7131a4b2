package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetricSnapshot 投稿指标快照。只追加，插入后永不修改；
// 同一投稿最多存在一条 is_locked 的快照，且锁定后不再产生新快照
type MetricSnapshot struct {
	ID             string     `gorm:"type:char(36);primaryKey" json:"id"`
	SubmissionID   string     `gorm:"type:char(36);not null;index:idx_submission_recorded" json:"submissionId"`
	Views          int64      `gorm:"not null;default:0" json:"views"`
	Likes          int64      `gorm:"not null;default:0" json:"likes"`
	Comments       int64      `gorm:"not null;default:0" json:"comments"`
	Shares         int64      `gorm:"not null;default:0" json:"shares"`
	Impressions    int64      `gorm:"not null;default:0" json:"impressions"`
	EngagementRate float64    `gorm:"not null;default:0" json:"engagementRate"`
	RecordedAt     time.Time  `gorm:"not null;index:idx_submission_recorded" json:"recordedAt"`
	IsLocked       bool       `gorm:"not null;default:false" json:"isLocked"`
	LockedAt       *time.Time `json:"lockedAt"`
}

func (MetricSnapshot) TableName() string {
	return "metric_snapshots"
}

func (m *MetricSnapshot) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

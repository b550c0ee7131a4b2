package repository

import (
	"Limelight/internal/model"
	"Limelight/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CampaignRepo interface {
	GetCampaign(ctx context.Context, id string) (*model.Campaign, error)
	ListCampaigns(ctx context.Context) ([]*model.Campaign, error)
	ListSyncableCampaigns(ctx context.Context, lookback time.Time) ([]*model.Campaign, error)
}

type campaignRepoImpl struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepo {
	return &campaignRepoImpl{db: db}
}

func (r *campaignRepoImpl) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	var campaign model.Campaign
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepoImpl) ListCampaigns(ctx context.Context) ([]*model.Campaign, error) {
	campaigns := make([]*model.Campaign, 0)
	result := r.db.WithContext(ctx).
		Where("status <> ?", consts.CampaignStatusDraft).
		Order("start_date DESC").
		Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}
	return campaigns, nil
}

// ListSyncableCampaigns 获取需要定时同步的活动：已开始、
// 且截止时间不早于 lookback。刚截止的活动仍需同步一轮以完成锁定
func (r *campaignRepoImpl) ListSyncableCampaigns(ctx context.Context, lookback time.Time) ([]*model.Campaign, error) {
	campaigns := make([]*model.Campaign, 0)
	result := r.db.WithContext(ctx).
		Where("status <> ?", consts.CampaignStatusDraft).
		Where("start_date <= ?", time.Now()).
		Where("end_date >= ?", lookback).
		Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}
	return campaigns, nil
}

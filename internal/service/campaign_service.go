package service

import (
	"Limelight/internal/api/dto"
	"Limelight/internal/model"
	"Limelight/internal/repository"
	"context"
	"time"
)

type CampaignService interface {
	GetCampaign(ctx context.Context, id string) (*dto.CampaignDTO, error)
	GetCampaigns(ctx context.Context) ([]*dto.CampaignDTO, error)
}

type campaignServiceImpl struct {
	campaignRepo repository.CampaignRepo
}

func NewCampaignService(campaignRepo repository.CampaignRepo) CampaignService {
	return &campaignServiceImpl{campaignRepo: campaignRepo}
}

func (s *campaignServiceImpl) GetCampaign(ctx context.Context, id string) (*dto.CampaignDTO, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return toCampaignDTO(campaign), nil
}

func (s *campaignServiceImpl) GetCampaigns(ctx context.Context) ([]*dto.CampaignDTO, error) {
	campaigns, err := s.campaignRepo.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.CampaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		list = append(list, toCampaignDTO(c))
	}
	return list, nil
}

func toCampaignDTO(c *model.Campaign) *dto.CampaignDTO {
	return &dto.CampaignDTO{
		ID:        c.ID,
		Title:     c.Title,
		Platform:  c.Platform,
		Type:      c.Type,
		StartDate: c.StartDate.Format("2006-01-02 15:04:05"),
		EndDate:   c.EndDate.Format("2006-01-02 15:04:05"),
		Status:    c.Status,
		Ended:     c.Ended(time.Now()),
	}
}

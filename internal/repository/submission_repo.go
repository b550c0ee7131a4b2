package repository

import (
	"Limelight/internal/model"
	"Limelight/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SubmissionRepo interface {
	CreateSubmission(ctx context.Context, submission *model.Submission) error
	GetSubmission(ctx context.Context, id string) (*model.Submission, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]*model.Submission, error)
	ListApprovedByCampaign(ctx context.Context, campaignID string) ([]*model.Submission, error)
	ListApproved(ctx context.Context) ([]*model.Submission, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	AddImpressions(ctx context.Context, id string, delta int64) error
}

type submissionRepoImpl struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepo {
	return &submissionRepoImpl{db: db}
}

func (r *submissionRepoImpl) CreateSubmission(ctx context.Context, submission *model.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepoImpl) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepoImpl) ListByCampaign(ctx context.Context, campaignID string) ([]*model.Submission, error) {
	submissions := make([]*model.Submission, 0)
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("submitted_at ASC").
		Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}
	return submissions, nil
}

func (r *submissionRepoImpl) ListApprovedByCampaign(ctx context.Context, campaignID string) ([]*model.Submission, error) {
	submissions := make([]*model.Submission, 0)
	result := r.db.WithContext(ctx).
		Where("campaign_id = ? AND status = ?", campaignID, consts.SubmissionStatusApproved).
		Order("submitted_at ASC").
		Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}
	return submissions, nil
}

func (r *submissionRepoImpl) ListApproved(ctx context.Context) ([]*model.Submission, error) {
	submissions := make([]*model.Submission, 0)
	result := r.db.WithContext(ctx).
		Where("status = ?", consts.SubmissionStatusApproved).
		Order("submitted_at ASC").
		Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}
	return submissions, nil
}

func (r *submissionRepoImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Submission{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// AddImpressions 原子累加站内曝光计数，由定时任务批量回写
func (r *submissionRepoImpl) AddImpressions(ctx context.Context, id string, delta int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Submission{}).
		Where("id = ?", id).
		UpdateColumn("impression_count", gorm.Expr("impression_count + ?", delta)).Error
}

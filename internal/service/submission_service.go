package service

import (
	"Limelight/internal/api/dto"
	"Limelight/internal/model"
	"Limelight/internal/pkg/consts"
	"Limelight/internal/platform"
	"Limelight/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
)

type SubmissionService interface {
	// CreateSubmission 投稿入口：解析链接、校验平台与账号归属
	CreateSubmission(ctx context.Context, userID string, req *dto.SubmissionCreateDTO) (*dto.SubmissionDTO, error)
	// UpdateStatus 审核状态变更
	UpdateStatus(ctx context.Context, submissionID string, status string) error
	// GetSubmissionsByCampaign 活动下投稿列表，附带最新快照
	GetSubmissionsByCampaign(ctx context.Context, campaignID string) ([]*dto.SubmissionDTO, error)
}

type submissionServiceImpl struct {
	submissionRepo repository.SubmissionRepo
	campaignRepo   repository.CampaignRepo
	accountRepo    repository.SocialAccountRepo
	snapshotRepo   repository.MetricSnapshotRepo
}

func NewSubmissionService(
	submissionRepo repository.SubmissionRepo,
	campaignRepo repository.CampaignRepo,
	accountRepo repository.SocialAccountRepo,
	snapshotRepo repository.MetricSnapshotRepo,
) SubmissionService {
	return &submissionServiceImpl{
		submissionRepo: submissionRepo,
		campaignRepo:   campaignRepo,
		accountRepo:    accountRepo,
		snapshotRepo:   snapshotRepo,
	}
}

func (s *submissionServiceImpl) CreateSubmission(ctx context.Context, userID string, req *dto.SubmissionCreateDTO) (*dto.SubmissionDTO, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	now := time.Now()
	if campaign.Status == consts.CampaignStatusDraft || now.Before(campaign.StartDate) || campaign.Ended(now) {
		return nil, ErrCampaignNotOpen
	}

	content, err := platform.ResolveContent(req.ContentURL)
	if err != nil {
		return nil, ErrInvalidContentURL
	}
	if content.Platform == platform.PlatformOther {
		return nil, ErrPlatformNotSupported
	}
	if campaign.Platform != "" && campaign.Platform != string(content.Platform) {
		return nil, ErrPlatformMismatch
	}

	account, err := s.accountRepo.GetAccount(ctx, req.SocialAccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if account.UserID != userID {
		return nil, ErrAccountNotOwned
	}
	if account.Platform != string(content.Platform) {
		return nil, ErrAccountPlatform
	}

	submission := &model.Submission{
		CampaignID:      req.CampaignID,
		CreatorID:       userID,
		SocialAccountID: req.SocialAccountID,
		ContentURL:      req.ContentURL,
		Platform:        string(content.Platform),
		ContentID:       content.ContentID,
		Status:          consts.SubmissionStatusPending,
		SubmittedAt:     now,
	}

	if err = s.submissionRepo.CreateSubmission(ctx, submission); err != nil {
		if isDuplicateError(err) {
			return nil, ErrSubmissionDuplicate
		}
		return nil, err
	}

	return s.toDTO(submission, nil), nil
}

func (s *submissionServiceImpl) UpdateStatus(ctx context.Context, submissionID string, status string) error {
	// 审核接口之外还有消费侧调用方，状态值在服务层兜底校验
	switch status {
	case consts.SubmissionStatusPending, consts.SubmissionStatusApproved, consts.SubmissionStatusRejected:
	default:
		return ErrParamInvalid
	}

	submission, err := s.submissionRepo.GetSubmission(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission == nil {
		return ErrSubmissionNotFound
	}
	return s.submissionRepo.UpdateStatus(ctx, submissionID, status)
}

func (s *submissionServiceImpl) GetSubmissionsByCampaign(ctx context.Context, campaignID string) ([]*dto.SubmissionDTO, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	submissions, err := s.submissionRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(submissions))
	for _, sub := range submissions {
		ids = append(ids, sub.ID)
	}
	latest, err := s.snapshotRepo.ListLatestBySubmissions(ctx, ids)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.SubmissionDTO, 0, len(submissions))
	for _, sub := range submissions {
		list = append(list, s.toDTO(sub, latest[sub.ID]))
	}
	return list, nil
}

func (s *submissionServiceImpl) toDTO(submission *model.Submission, snapshot *model.MetricSnapshot) *dto.SubmissionDTO {
	item := &dto.SubmissionDTO{}
	_ = copier.Copy(item, submission)
	item.SubmittedAt = submission.SubmittedAt.Format("2006-01-02 15:04:05")

	if snapshot != nil {
		item.LatestSnapshot = &dto.MetricSnapshotDTO{
			Views:          snapshot.Views,
			Likes:          snapshot.Likes,
			Comments:       snapshot.Comments,
			Shares:         snapshot.Shares,
			Impressions:    snapshot.Impressions,
			EngagementRate: snapshot.EngagementRate,
			RecordedAt:     snapshot.RecordedAt.Format("2006-01-02 15:04:05"),
			IsLocked:       snapshot.IsLocked,
		}
	}
	return item
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

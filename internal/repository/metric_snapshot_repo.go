package repository

import (
	"Limelight/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// MetricSnapshotRepo 快照台账只追加：仅提供插入与按时间读取，
// 不提供更新或删除
type MetricSnapshotRepo interface {
	CreateSnapshot(ctx context.Context, snapshot *model.MetricSnapshot) error
	GetLatestBySubmission(ctx context.Context, submissionID string) (*model.MetricSnapshot, error)
	ListBySubmission(ctx context.Context, submissionID string) ([]*model.MetricSnapshot, error)
	ListLatestBySubmissions(ctx context.Context, submissionIDs []string) (map[string]*model.MetricSnapshot, error)
}

type metricSnapshotRepoImpl struct {
	db *gorm.DB
}

func NewMetricSnapshotRepository(db *gorm.DB) MetricSnapshotRepo {
	return &metricSnapshotRepoImpl{db: db}
}

func (r *metricSnapshotRepoImpl) CreateSnapshot(ctx context.Context, snapshot *model.MetricSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *metricSnapshotRepoImpl) GetLatestBySubmission(ctx context.Context, submissionID string) (*model.MetricSnapshot, error) {
	var snapshot model.MetricSnapshot
	err := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("recorded_at DESC, id DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

func (r *metricSnapshotRepoImpl) ListBySubmission(ctx context.Context, submissionID string) ([]*model.MetricSnapshot, error) {
	snapshots := make([]*model.MetricSnapshot, 0)
	result := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("recorded_at ASC, id ASC").
		Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}

// ListLatestBySubmissions 取每条投稿的最新快照。按时间升序扫描后在内存
// 中覆盖收敛，锁定快照必然是台账中的最后一条，因此"最新"即"锁定优先"
func (r *metricSnapshotRepoImpl) ListLatestBySubmissions(ctx context.Context, submissionIDs []string) (map[string]*model.MetricSnapshot, error) {
	latest := make(map[string]*model.MetricSnapshot, len(submissionIDs))
	if len(submissionIDs) == 0 {
		return latest, nil
	}

	snapshots := make([]*model.MetricSnapshot, 0)
	result := r.db.WithContext(ctx).
		Where("submission_id IN ?", submissionIDs).
		Order("recorded_at ASC, id ASC").
		Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, s := range snapshots {
		latest[s.SubmissionID] = s
	}
	return latest, nil
}

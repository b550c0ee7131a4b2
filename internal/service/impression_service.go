package service

import (
	"Limelight/internal/pkg/consts"
	"Limelight/internal/pkg/redis"
	"Limelight/internal/repository"
	"context"
	"time"
)

// 会话集合的存活时间，新会话从空集合开始
const sessionTTL = 30 * time.Minute

// SessionSet 一次浏览会话内已计数的投稿集合。
// 以显式值传入而非隐藏在全局状态里，便于测试与会话重置
type SessionSet interface {
	// Add 将投稿加入集合，首次加入返回 true
	Add(ctx context.Context, submissionID string) (bool, error)
}

// ImpressionCounter 站内曝光计数器。曝光是独立于平台播放量的
// 注意力信号，单独计数，不并入 views
type ImpressionCounter interface {
	Incr(ctx context.Context, submissionID string) error
	Pending(ctx context.Context, submissionID string) (int64, error)
}

type ImpressionService interface {
	// RecordImpression 记录一次曝光，同一会话内同一投稿至多计一次
	RecordImpression(ctx context.Context, submissionID string, session SessionSet) error
	// GetImpressionCount 已落库计数加上待回写的增量
	GetImpressionCount(ctx context.Context, submissionID string) (int64, error)
}

type impressionServiceImpl struct {
	submissionRepo repository.SubmissionRepo
	counter        ImpressionCounter
}

func NewImpressionService(submissionRepo repository.SubmissionRepo, counter ImpressionCounter) ImpressionService {
	return &impressionServiceImpl{
		submissionRepo: submissionRepo,
		counter:        counter,
	}
}

func (s *impressionServiceImpl) RecordImpression(ctx context.Context, submissionID string, session SessionSet) error {
	submission, err := s.submissionRepo.GetSubmission(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission == nil {
		return ErrSubmissionNotFound
	}

	added, err := session.Add(ctx, submissionID)
	if err != nil {
		return err
	}
	if !added {
		// 会话内重复曝光，幂等跳过
		return nil
	}

	return s.counter.Incr(ctx, submissionID)
}

func (s *impressionServiceImpl) GetImpressionCount(ctx context.Context, submissionID string) (int64, error) {
	submission, err := s.submissionRepo.GetSubmission(ctx, submissionID)
	if err != nil {
		return 0, err
	}
	if submission == nil {
		return 0, ErrSubmissionNotFound
	}

	pending, err := s.counter.Pending(ctx, submissionID)
	if err != nil {
		return 0, err
	}
	return submission.ImpressionCount + pending, nil
}

// redisSessionSet 以会话 ID 为键的 Redis 集合实现
type redisSessionSet struct {
	sessionID string
}

func NewRedisSessionSet(sessionID string) SessionSet {
	return &redisSessionSet{sessionID: sessionID}
}

func (s *redisSessionSet) Add(ctx context.Context, submissionID string) (bool, error) {
	return redis.SAddWithExpiration(ctx, consts.ImpressionSessionKey+s.sessionID, submissionID, sessionTTL)
}

// redisImpressionCounter 计数写入 Redis 并标记脏集合，由定时任务回写数据库
type redisImpressionCounter struct{}

func NewRedisImpressionCounter() ImpressionCounter {
	return &redisImpressionCounter{}
}

func (c *redisImpressionCounter) Incr(ctx context.Context, submissionID string) error {
	if _, err := redis.Incr(ctx, consts.SubmissionImpressionKey+submissionID); err != nil {
		return err
	}
	_, err := redis.SAdd(ctx, consts.ImpressionDirtyKey, submissionID)
	return err
}

func (c *redisImpressionCounter) Pending(ctx context.Context, submissionID string) (int64, error) {
	return redis.GetInt64(ctx, consts.SubmissionImpressionKey+submissionID)
}

package job

import (
	"Limelight/internal/pkg/consts"
	"Limelight/internal/pkg/logger"
	"Limelight/internal/pkg/redis"
	"Limelight/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const impressionFlushLockTTL = 10 * time.Minute

type ImpressionFlushJob struct {
	submissionRepo repository.SubmissionRepo
}

func NewImpressionFlushJob(submissionRepo repository.SubmissionRepo) *ImpressionFlushJob {
	return &ImpressionFlushJob{submissionRepo: submissionRepo}
}

// Run 将 Redis 中累积的曝光增量回写到数据库。
// 先把脏集合整体改名为处理中集合，窗口期内新产生的曝光会落到
// 新的脏集合里，留给下一轮。处理中集合全程受分布式锁保护，
// 避免两个实例的改名互相覆盖丢失成员
func (s *ImpressionFlushJob) Run() {
	traceID := "job-impression-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	locked, err := redis.TryLock(ctx, consts.ImpressionFlushLock, traceID, impressionFlushLockTTL, 0)
	if err != nil {
		log.ErrorContext(ctx, "acquire impression flush lock error", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "impression flush already running elsewhere, skip")
		return
	}
	defer redis.UnLock(ctx, consts.ImpressionFlushLock, traceID)

	processingKey := consts.ImpressionDirtyKey + ":processing"
	err = redis.Rename(ctx, consts.ImpressionDirtyKey, processingKey)
	if err != nil {
		// 脏集合不存在说明本轮没有新曝光
		return
	}

	submissionIDs, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get impression dirty set error", "err", err)
		return
	}

	flushed := 0
	for _, id := range submissionIDs {
		delta, err := redis.GetDelInt64(ctx, consts.SubmissionImpressionKey+id)
		if err != nil {
			log.ErrorContext(ctx, "read impression delta error", "submission_id", id, "err", err)
			continue
		}
		if delta == 0 {
			continue
		}

		if err = s.submissionRepo.AddImpressions(ctx, id, delta); err != nil {
			log.ErrorContext(ctx, "flush impression delta error",
				"submission_id", id, "delta", delta, "err", err)
			continue
		}
		flushed++
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete impression processing set error", "err", err)
	}

	log.InfoContext(ctx, "flush impressions success",
		"dirty_count", len(submissionIDs),
		"flushed_count", flushed)
}

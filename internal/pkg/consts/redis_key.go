package consts

const (
	SubmissionImpressionKey = "submission:impression:"
	ImpressionDirtyKey      = "submission:impression:dirty"
	ImpressionSessionKey    = "impression:session:"
	TokenBlacklistKey       = "token:blacklist:"
)

const (
	MetricSyncLock      = "lock:metric:sync"
	ImpressionFlushLock = "lock:impression:flush"
)

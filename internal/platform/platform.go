package platform

import (
	"context"
	"errors"
	"fmt"
)

type Platform string

const (
	PlatformTikTok   Platform = "tiktok"
	PlatformYouTube  Platform = "youtube"
	PlatformLinkedIn Platform = "linkedin"
	PlatformOther    Platform = "other"
)

// Metrics 各平台归一化后的指标。曝光量与播放量是两个独立口径，
// 平台未单独提供曝光数据时由适配器回退为播放量
type Metrics struct {
	Views       int64
	Likes       int64
	Comments    int64
	Shares      int64
	Impressions int64
}

// ErrUnauthorized 令牌缺失或失效，需要账号重新授权，与普通抓取失败区分
var ErrUnauthorized = errors.New("平台访问令牌无效或已过期")

// FetchError 平台接口抓取失败（非 2xx、超时、响应异常）。
// 适配器内部不做重试，重试策略由同步引擎决定
type FetchError struct {
	Platform Platform
	Cause    string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s 指标抓取失败: %s", e.Platform, e.Cause)
}

// MetricsClient 平台指标抓取能力。新增平台只需实现本接口并注册，
// 同步引擎无需改动
type MetricsClient interface {
	FetchMetrics(ctx context.Context, accessToken, contentID string) (*Metrics, error)
}

// Registry 平台到适配器的映射
type Registry map[Platform]MetricsClient

func (r Registry) Client(p Platform) (MetricsClient, bool) {
	c, ok := r[p]
	return c, ok
}

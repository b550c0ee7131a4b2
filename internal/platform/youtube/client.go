package youtube

import (
	"Limelight/internal/api/config"
	"Limelight/internal/platform"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://www.googleapis.com"

type Client struct {
	http *resty.Client
}

func NewClient(cfg config.PlatformAPIConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second)

	return &Client{http: client}
}

// videoListResponse 数值字段在 YouTube Data API 中以字符串返回
type videoListResponse struct {
	Items []struct {
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// FetchMetrics 查询视频统计数据。YouTube 不提供转发与曝光口径，
// Shares 记 0，Impressions 回退为播放量
func (c *Client) FetchMetrics(ctx context.Context, accessToken, contentID string) (*platform.Metrics, error) {
	var body videoListResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParams(map[string]string{
			"part": "statistics",
			"id":   contentID,
		}).
		SetResult(&body).
		Get("/youtube/v3/videos")
	if err != nil {
		return nil, &platform.FetchError{Platform: platform.PlatformYouTube, Cause: err.Error()}
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, platform.ErrUnauthorized
	}
	if !resp.IsSuccess() {
		return nil, &platform.FetchError{Platform: platform.PlatformYouTube, Cause: resp.Status()}
	}
	if len(body.Items) == 0 {
		return nil, &platform.FetchError{Platform: platform.PlatformYouTube, Cause: "响应中未包含目标视频"}
	}

	stats := body.Items[0].Statistics
	views, err := parseCount(stats.ViewCount)
	if err != nil {
		return nil, &platform.FetchError{Platform: platform.PlatformYouTube, Cause: "统计字段格式异常: " + err.Error()}
	}
	likes, err := parseCount(stats.LikeCount)
	if err != nil {
		return nil, &platform.FetchError{Platform: platform.PlatformYouTube, Cause: "统计字段格式异常: " + err.Error()}
	}
	comments, err := parseCount(stats.CommentCount)
	if err != nil {
		return nil, &platform.FetchError{Platform: platform.PlatformYouTube, Cause: "统计字段格式异常: " + err.Error()}
	}

	return &platform.Metrics{
		Views:       views,
		Likes:       likes,
		Comments:    comments,
		Shares:      0,
		Impressions: views,
	}, nil
}

// parseCount 解析字符串计数。字段缺失（如隐藏点赞数）按 0 处理，
// 存在但格式异常则视为响应损坏
func parseCount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

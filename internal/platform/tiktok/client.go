package tiktok

import (
	"Limelight/internal/api/config"
	"Limelight/internal/platform"
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://open.tiktokapis.com"

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
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Client{http: client}
}

type videoQueryResponse struct {
	Data struct {
		Videos []struct {
			ID           string `json:"id"`
			ViewCount    int64  `json:"view_count"`
			LikeCount    int64  `json:"like_count"`
			CommentCount int64  `json:"comment_count"`
			ShareCount   int64  `json:"share_count"`
		} `json:"videos"`
	} `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FetchMetrics 通过视频批量查询接口按作品 ID 过滤取回指标。
// TikTok 不提供独立的曝光口径，Impressions 回退为播放量
func (c *Client) FetchMetrics(ctx context.Context, accessToken, contentID string) (*platform.Metrics, error) {
	var body videoQueryResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("fields", "id,view_count,like_count,comment_count,share_count").
		SetBody(map[string]any{
			"filters": map[string]any{
				"video_ids": []string{contentID},
			},
		}).
		SetResult(&body).
		Post("/v2/video/query/")
	if err != nil {
		return nil, &platform.FetchError{Platform: platform.PlatformTikTok, Cause: err.Error()}
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, platform.ErrUnauthorized
	}
	if !resp.IsSuccess() {
		return nil, &platform.FetchError{Platform: platform.PlatformTikTok, Cause: resp.Status()}
	}
	if len(body.Data.Videos) == 0 {
		return nil, &platform.FetchError{Platform: platform.PlatformTikTok, Cause: "响应中未包含目标视频"}
	}

	v := body.Data.Videos[0]
	return &platform.Metrics{
		Views:       v.ViewCount,
		Likes:       v.LikeCount,
		Comments:    v.CommentCount,
		Shares:      v.ShareCount,
		Impressions: v.ViewCount,
	}, nil
}

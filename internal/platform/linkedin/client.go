package linkedin

import (
	"Limelight/internal/api/config"
	"Limelight/internal/platform"
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.linkedin.com"

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
		SetHeader("X-Restli-Protocol-Version", "2.0.0")

	return &Client{http: client}
}

type socialActionsResponse struct {
	LikesSummary struct {
		TotalLikes int64 `json:"totalLikes"`
	} `json:"likesSummary"`
	CommentsSummary struct {
		AggregatedTotalComments int64 `json:"aggregatedTotalComments"`
	} `json:"commentsSummary"`
	SharesSummary struct {
		TotalShares int64 `json:"totalShares"`
	} `json:"sharesSummary"`
	ViewsSummary struct {
		TotalViews       int64 `json:"totalViews"`
		TotalImpressions int64 `json:"totalImpressions"`
	} `json:"viewsSummary"`
}

// FetchMetrics 查询 activity URN 的社交动作汇总。
// 响应中没有独立曝光数字时 Impressions 回退为浏览量
func (c *Client) FetchMetrics(ctx context.Context, accessToken, contentID string) (*platform.Metrics, error) {
	var body socialActionsResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&body).
		Get("/v2/socialActions/urn:li:activity:" + contentID)
	if err != nil {
		return nil, &platform.FetchError{Platform: platform.PlatformLinkedIn, Cause: err.Error()}
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, platform.ErrUnauthorized
	}
	if !resp.IsSuccess() {
		return nil, &platform.FetchError{Platform: platform.PlatformLinkedIn, Cause: resp.Status()}
	}

	impressions := body.ViewsSummary.TotalImpressions
	if impressions == 0 {
		impressions = body.ViewsSummary.TotalViews
	}

	return &platform.Metrics{
		Views:       body.ViewsSummary.TotalViews,
		Likes:       body.LikesSummary.TotalLikes,
		Comments:    body.CommentsSummary.AggregatedTotalComments,
		Shares:      body.SharesSummary.TotalShares,
		Impressions: impressions,
	}, nil
}

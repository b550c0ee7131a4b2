package platform

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidURL 链接无法解析，投稿入口直接拒绝
var ErrInvalidURL = errors.New("无法解析的作品链接")

var linkedinActivityRegex = regexp.MustCompile(`activity[-/:](\d+)`)

// Content 链接解析结果。ContentID 为空表示平台可识别但提取不到作品 ID，
// 此时指标抓取不可用，但不算硬错误
type Content struct {
	Platform  Platform
	ContentID string
}

// ResolveContent 从投稿链接解析平台与作品 ID。
// 平台识别基于域名子串；不在支持列表内的一律归为 other
func ResolveContent(rawURL string) (*Content, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return nil, ErrInvalidURL
	}

	host := strings.ToLower(u.Host)

	switch {
	case strings.Contains(host, "tiktok.com"):
		return &Content{Platform: PlatformTikTok, ContentID: lastPathSegment(u.Path)}, nil
	case strings.Contains(host, "youtu.be"):
		return &Content{Platform: PlatformYouTube, ContentID: firstPathSegment(u.Path)}, nil
	case strings.Contains(host, "youtube.com"):
		return &Content{Platform: PlatformYouTube, ContentID: u.Query().Get("v")}, nil
	case strings.Contains(host, "linkedin.com"):
		return &Content{Platform: PlatformLinkedIn, ContentID: linkedinActivityID(rawURL)}, nil
	default:
		return &Content{Platform: PlatformOther}, nil
	}
}

// lastPathSegment 取路径最后一个非空段，TikTok 作品 ID 位于此处
func lastPathSegment(path string) string {
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

func firstPathSegment(path string) string {
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			return seg
		}
	}
	return ""
}

// linkedinActivityID 提取 activity 后跟随的数字 ID，兼容 -、/、: 三种分隔
func linkedinActivityID(rawURL string) string {
	m := linkedinActivityRegex.FindStringSubmatch(rawURL)
	if len(m) > 1 {
		return m[1]
	}
	return ""
}

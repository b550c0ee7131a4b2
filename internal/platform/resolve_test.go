package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveContent(t *testing.T) {
	tests := []struct {
		name      string
		rawURL    string
		platform  Platform
		contentID string
	}{
		{
			name:      "tiktok video url",
			rawURL:    "https://www.tiktok.com/@creator/video/7234567890123456789",
			platform:  PlatformTikTok,
			contentID: "7234567890123456789",
		},
		{
			name:      "tiktok url with trailing slash",
			rawURL:    "https://www.tiktok.com/@creator/video/7234567890123456789/",
			platform:  PlatformTikTok,
			contentID: "7234567890123456789",
		},
		{
			name:      "youtube short link",
			rawURL:    "https://youtu.be/dQw4w9WgXcQ",
			platform:  PlatformYouTube,
			contentID: "dQw4w9WgXcQ",
		},
		{
			name:      "youtube watch url",
			rawURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			platform:  PlatformYouTube,
			contentID: "dQw4w9WgXcQ",
		},
		{
			name:      "linkedin activity urn",
			rawURL:    "https://www.linkedin.com/feed/update/urn:li:activity:7123456789012345678/",
			platform:  PlatformLinkedIn,
			contentID: "7123456789012345678",
		},
		{
			name:      "linkedin post slug",
			rawURL:    "https://www.linkedin.com/posts/someone_topic-activity-7123456789012345678-abcd",
			platform:  PlatformLinkedIn,
			contentID: "7123456789012345678",
		},
		{
			name:      "unsupported platform falls to other",
			rawURL:    "https://vimeo.com/123456",
			platform:  PlatformOther,
			contentID: "",
		},
		{
			name:      "linkedin without activity id keeps empty content id",
			rawURL:    "https://www.linkedin.com/in/someone",
			platform:  PlatformLinkedIn,
			contentID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := ResolveContent(tt.rawURL)
			require.NoError(t, err)
			assert.Equal(t, tt.platform, content.Platform)
			assert.Equal(t, tt.contentID, content.ContentID)
		})
	}
}

func TestResolveContentInvalid(t *testing.T) {
	for _, rawURL := range []string{"", "not a url", "/relative/path"} {
		_, err := ResolveContent(rawURL)
		assert.ErrorIs(t, err, ErrInvalidURL, rawURL)
	}
}

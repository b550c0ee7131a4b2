package dto

// LeaderboardEntryDTO 榜单条目，排名从 1 开始且互不相同
type LeaderboardEntryDTO struct {
	CreatorID   string `json:"creatorId"`
	TotalViews  int64  `json:"totalViews"`
	Submissions int    `json:"submissions"`
	Rank        int    `json:"rank"`
}

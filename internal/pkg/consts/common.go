package consts

const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

const (
	CampaignStatusDraft  = "draft"
	CampaignStatusActive = "active"
)

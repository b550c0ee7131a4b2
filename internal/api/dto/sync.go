package dto

// SyncResultDTO 同步触发结果
type SyncResultDTO struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

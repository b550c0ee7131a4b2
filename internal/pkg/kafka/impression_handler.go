package kafka

import (
	"Limelight/internal/service"
	"context"
	"errors"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ImpressionEvent 前端埋点上报的曝光事件
type ImpressionEvent struct {
	SubmissionID string `json:"submission_id"`
	SessionID    string `json:"session_id"`
}

type ImpressionHandler struct {
	impressionSvc service.ImpressionService
}

func NewImpressionHandler(impressionSvc service.ImpressionService) *ImpressionHandler {
	return &ImpressionHandler{impressionSvc: impressionSvc}
}

func (s *ImpressionHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("impression consumer setup")
	return nil
}

func (s *ImpressionHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("impression consumer cleanup")
	return nil
}

func (s *ImpressionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-impression consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-impression process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ImpressionHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event ImpressionEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// 无法解析的消息重试也无意义，直接丢弃
		log.ErrorContext(ctx, "unmarshal impression event error", "err", err)
		return nil
	}
	if event.SubmissionID == "" || event.SessionID == "" {
		return nil
	}

	err := s.impressionSvc.RecordImpression(ctx, event.SubmissionID, service.NewRedisSessionSet(event.SessionID))
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			// 投稿可能已被删除，跳过
			log.WarnContext(ctx, "impression for unknown submission, skip",
				"submission_id", event.SubmissionID)
			return nil
		}
		return err
	}
	return nil
}

package colis_scan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	colisservice "marketplace/internal/service/colis"
	"marketplace/pkg/logger"
)

// scanEvent публикует мобильное приложение кондуктора при сканировании колиса.
type scanEvent struct {
	ColisID      int64    `json:"colis_id"`
	ConducteurID int64    `json:"conducteur_id"`
	Statut       string   `json:"statut"`
	Commentaire  string   `json:"commentaire"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type Handler struct {
	colisService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, colisService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		colisService:             colisService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("colis.scan: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("colis.scan: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event scanEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("colis.scan handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("colis", event.ColisID),
		logger.NewField("statut", event.Statut),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("colis.scan processing")

	actor := entities.Actor{
		ID:   event.ConducteurID,
		Role: entities.RoleConducteur,
	}

	var position *entities.Position
	if event.Latitude != nil && event.Longitude != nil {
		position = &entities.Position{
			Latitude:  *event.Latitude,
			Longitude: *event.Longitude,
		}
	}

	colisEntity, err := h.colisService.AdvanceCustody(
		ctx,
		actor,
		event.ColisID,
		entities.ColisStatusType(event.Statut),
		event.Commentaire,
		position,
	)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("colis.scan handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, colisservice.ErrInvalidStatut):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("colis.scan handler unknown statut for colis")

		case errors.Is(err, colisservice.ErrInvalidTransition),
			errors.Is(err, colisservice.ErrStatutModifie),
			errors.Is(err, colisservice.ErrColisTermine):
			// повторный скан или гонка, переход уже неактуален
			msgLog.With(
				logger.NewField("error", err),
			).Warn("colis.scan handler transition no longer applicable")

		case errors.Is(err, colisservice.ErrForbidden):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("colis.scan handler scan from foreign conducteur")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("colis.scan handler failed to process colis")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("colis", colisEntity.ID),
		logger.NewField("reference", colisEntity.Reference),
		logger.NewField("current_statut", colisEntity.Statut.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("colis.scan: processed")

	sess.MarkMessage(message, "")
	return false
}

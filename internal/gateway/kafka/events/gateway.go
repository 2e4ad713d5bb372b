package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

const (
	eventDemandeStatutChange = "demande_statut_change"
	eventColisStatutChange   = "colis_statut_change"
)

type demandeStatutChangeEvent struct {
	Type         string    `json:"type"`
	DemandeID    int64     `json:"demande_id"`
	AnnonceID    int64     `json:"annonce_id"`
	ExpediteurID int64     `json:"expediteur_id"`
	Statut       string    `json:"statut"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type colisStatutChangeEvent struct {
	Type       string    `json:"type"`
	ColisID    int64     `json:"colis_id"`
	Reference  string    `json:"reference"`
	DemandeID  int64     `json:"demande_id"`
	TrajetID   int64     `json:"trajet_id"`
	Statut     string    `json:"statut"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventsGateway публикует смену статусов в общий топик событий.
// Публикация best-effort: состояние уже закоммичено в базу,
// поэтому ошибка отправки логируется и не возвращается вызывающему.
type EventsGateway struct {
	log      logger.Logger
	producer producer
	topic    string
}

func New(log logger.Logger, producer producer, topic string) *EventsGateway {
	return &EventsGateway{
		log: log.With(
			logger.NewField("topic", topic),
		),
		producer: producer,
		topic:    topic,
	}
}

func (g *EventsGateway) DemandeStatutChange(ctx context.Context, demande *entities.Demande) {
	if demande == nil {
		return
	}

	event := demandeStatutChangeEvent{
		Type:         eventDemandeStatutChange,
		DemandeID:    demande.ID,
		AnnonceID:    demande.AnnonceID,
		ExpediteurID: demande.ExpediteurID,
		Statut:       demande.Statut.String(),
		OccurredAt:   demande.UpdatedAt,
	}

	// ключ по заявке: события одной заявки попадают в одну партицию
	g.publish(ctx, eventDemandeStatutChange, strconv.FormatInt(demande.ID, 10), event)
}

func (g *EventsGateway) ColisStatutChange(ctx context.Context, colis *entities.Colis) {
	if colis == nil {
		return
	}

	event := colisStatutChangeEvent{
		Type:       eventColisStatutChange,
		ColisID:    colis.ID,
		Reference:  colis.Reference,
		DemandeID:  colis.DemandeID,
		TrajetID:   colis.TrajetID,
		Statut:     colis.Statut.String(),
		OccurredAt: colis.UpdatedAt,
	}

	g.publish(ctx, eventColisStatutChange, colis.Reference, event)
}

func (g *EventsGateway) publish(ctx context.Context, eventType, key string, event any) {
	if ctx.Err() != nil {
		EventsPublishedTotal.WithLabelValues(g.topic, eventType, "cancelled").Inc()
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		EventsPublishedTotal.WithLabelValues(g.topic, eventType, "error").Inc()
		g.log.With(
			logger.NewField("event_type", eventType),
			logger.NewField("error", err),
		).Error("marshal event")
		return
	}

	msg := sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	_, _, err = g.producer.SendMessage(&msg)
	if err != nil {
		EventsPublishedTotal.WithLabelValues(g.topic, eventType, "error").Inc()
		g.log.With(
			logger.NewField("event_type", eventType),
			logger.NewField("key", key),
			logger.NewField("error", err),
		).Error("publish event")
		return
	}

	EventsPublishedTotal.WithLabelValues(g.topic, eventType, "ok").Inc()
}

//go:build wireinject
// +build wireinject

package app

import (
	"context"

	identityGateway "marketplace/internal/gateway/grpc/identity"
	eventsGateway "marketplace/internal/gateway/kafka/events"
	"marketplace/internal/handlers/tasks/demande_expiration"
	"marketplace/internal/handlers/tasks/identity_probe"
	"marketplace/internal/pkg/config"

	annonceRepo "marketplace/internal/repository/annonce"
	colisRepo "marketplace/internal/repository/colis"
	demandeRepo "marketplace/internal/repository/demande"
	evaluationRepo "marketplace/internal/repository/evaluation"
	annonceService "marketplace/internal/service/annonce"
	colisService "marketplace/internal/service/colis"
	demandeService "marketplace/internal/service/demande"
	evaluationService "marketplace/internal/service/evaluation"

	"marketplace/pkg/logger"
	"marketplace/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideExpirationInterval,
		provideExpirationMaxAge,
		provideIdentityProbeInterval,

		provideAnnonceRepository,
		provideDemandeRepository,
		provideColisRepository,
		provideEvaluationRepository,

		provideEventsGateway,
		provideHealthClient,
		provideIdentityGateway,

		provideServiceAnnonce,
		provideServiceColis,
		provideServiceDemande,
		provideServiceEvaluation,

		provideDemandeExpirationTask,
		provideIdentityProbeTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAnnonce), new(*annonceService.Annonce)),
		wire.Bind(new(ServiceDemande), new(*demandeService.Demande)),
		wire.Bind(new(ServiceColis), new(*colisService.Colis)),
		wire.Bind(new(ServiceEvaluation), new(*evaluationService.Evaluation)),

		wire.Bind(new(annonceService.Repository), new(*annonceRepo.Repository)),
		wire.Bind(new(demandeService.Repository), new(*demandeRepo.Repository)),
		wire.Bind(new(colisService.Repository), new(*colisRepo.Repository)),
		wire.Bind(new(evaluationService.Repository), new(*evaluationRepo.Repository)),

		wire.Bind(new(demandeService.AnnonceProvider), new(*annonceService.Annonce)),
		wire.Bind(new(demandeService.ColisService), new(*colisService.Colis)),
		wire.Bind(new(evaluationService.DemandeProvider), new(*demandeRepo.Repository)),
		wire.Bind(new(evaluationService.AnnonceProvider), new(*annonceService.Annonce)),

		wire.Bind(new(demandeService.Events), new(*eventsGateway.EventsGateway)),
		wire.Bind(new(colisService.Events), new(*eventsGateway.EventsGateway)),

		wire.Bind(new(annonceService.TxManager), new(*tx.Manager)),
		wire.Bind(new(demandeService.TxManager), new(*tx.Manager)),
		wire.Bind(new(colisService.TxManager), new(*tx.Manager)),

		wire.Bind(new(demande_expiration.Service), new(*demandeService.Demande)),
		wire.Bind(new(identity_probe.Gateway), new(*identityGateway.IdentityGateway)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-colis-scan)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideColisRepository,
		provideEventsGateway,
		provideServiceColis,

		wire.Bind(new(colisService.Repository), new(*colisRepo.Repository)),
		wire.Bind(new(colisService.Events), new(*eventsGateway.EventsGateway)),
		wire.Bind(new(colisService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

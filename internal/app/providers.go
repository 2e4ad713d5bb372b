package app

import (
	"context"
	"time"

	identityGateway "marketplace/internal/gateway/grpc/identity"
	eventsGateway "marketplace/internal/gateway/kafka/events"
	annonce_cancel_put "marketplace/internal/handlers/rest/annonce_cancel_put"
	annonce_complete_put "marketplace/internal/handlers/rest/annonce_complete_put"
	annonce_get "marketplace/internal/handlers/rest/annonce_get"
	annonce_post "marketplace/internal/handlers/rest/annonce_post"
	annonce_status_patch "marketplace/internal/handlers/rest/annonce_status_patch"
	annonces_get "marketplace/internal/handlers/rest/annonces_get"
	annonces_mine_get "marketplace/internal/handlers/rest/annonces_mine_get"
	colis_get "marketplace/internal/handlers/rest/colis_get"
	colis_incident_post "marketplace/internal/handlers/rest/colis_incident_post"
	colis_incident_resolve_patch "marketplace/internal/handlers/rest/colis_incident_resolve_patch"
	colis_photo_post "marketplace/internal/handlers/rest/colis_photo_post"
	colis_signature_post "marketplace/internal/handlers/rest/colis_signature_post"
	colis_status_patch "marketplace/internal/handlers/rest/colis_status_patch"
	demande_get "marketplace/internal/handlers/rest/demande_get"
	demande_post "marketplace/internal/handlers/rest/demande_post"
	demande_status_patch "marketplace/internal/handlers/rest/demande_status_patch"
	demandes_mine_conducteur_get "marketplace/internal/handlers/rest/demandes_mine_conducteur_get"
	demandes_mine_get "marketplace/internal/handlers/rest/demandes_mine_get"
	evaluation_post "marketplace/internal/handlers/rest/evaluation_post"
	evaluation_reply_patch "marketplace/internal/handlers/rest/evaluation_reply_patch"
	evaluations_conducteur_get "marketplace/internal/handlers/rest/evaluations_conducteur_get"
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

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type (
	ExpirationInterval    time.Duration
	ExpirationMaxAge      time.Duration
	IdentityProbeInterval time.Duration
)

type Application struct {
	ServiceAnnonce    ServiceAnnonce
	ServiceDemande    ServiceDemande
	ServiceColis      ServiceColis
	ServiceEvaluation ServiceEvaluation
	BackgroundWorkers *background.Worker
}

type ServiceAnnonce interface {
	annonce_post.Service
	annonce_get.Service
	annonces_get.Service
	annonces_mine_get.Service
	annonce_status_patch.Service
	annonce_complete_put.Service
	annonce_cancel_put.Service
}

type ServiceDemande interface {
	demande_post.Service
	demande_get.Service
	demandes_mine_get.Service
	demandes_mine_conducteur_get.Service
	demande_status_patch.Service
}

type ServiceColis interface {
	colis_get.Service
	colis_status_patch.Service
	colis_photo_post.Service
	colis_signature_post.Service
	colis_incident_post.Service
	colis_incident_resolve_patch.Service
}

type ServiceEvaluation interface {
	evaluation_post.Service
	evaluation_reply_patch.Service
	evaluations_conducteur_get.Service
}

type KafkaWorkerApp struct {
	ColisService *colisService.Colis
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAnnonceRepository(querier *querier.Querier) *annonceRepo.Repository {
	return annonceRepo.New(querier)
}

func provideDemandeRepository(querier *querier.Querier) *demandeRepo.Repository {
	return demandeRepo.New(querier)
}

func provideColisRepository(querier *querier.Querier) *colisRepo.Repository {
	return colisRepo.New(querier)
}

func provideEvaluationRepository(querier *querier.Querier) *evaluationRepo.Repository {
	return evaluationRepo.New(querier)
}

func provideEventsGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *eventsGateway.EventsGateway {
	return eventsGateway.New(log, producer, cfg.Kafka.TopicEvents)
}

func provideHealthClient(conn *grpc.ClientConn) healthpb.HealthClient {
	return healthpb.NewHealthClient(conn)
}

func provideIdentityGateway(client healthpb.HealthClient) *identityGateway.IdentityGateway {
	return identityGateway.New(client)
}

func provideServiceAnnonce(
	repository annonceService.Repository,
	txManager annonceService.TxManager,
) *annonceService.Annonce {
	return annonceService.New(repository, txManager)
}

func provideServiceColis(
	repository colisService.Repository,
	events colisService.Events,
	txManager colisService.TxManager,
) *colisService.Colis {
	return colisService.New(repository, events, txManager)
}

func provideServiceDemande(
	repository demandeService.Repository,
	annonces demandeService.AnnonceProvider,
	colis demandeService.ColisService,
	events demandeService.Events,
	txManager demandeService.TxManager,
) *demandeService.Demande {
	return demandeService.New(repository, annonces, colis, events, txManager)
}

func provideServiceEvaluation(
	repository evaluationService.Repository,
	demandes evaluationService.DemandeProvider,
	annonces evaluationService.AnnonceProvider,
) *evaluationService.Evaluation {
	return evaluationService.New(repository, demandes, annonces)
}

func provideExpirationInterval(cfg *config.Config) ExpirationInterval {
	return ExpirationInterval(cfg.Tasks.DemandesExpirationInterval)
}

func provideExpirationMaxAge(cfg *config.Config) ExpirationMaxAge {
	return ExpirationMaxAge(cfg.Tasks.DemandesExpirationMaxAge)
}

func provideIdentityProbeInterval(cfg *config.Config) IdentityProbeInterval {
	return IdentityProbeInterval(cfg.Tasks.IdentityProbeInterval)
}

func provideDemandeExpirationTask(
	log logger.Logger,
	demandeService demande_expiration.Service,
	interval ExpirationInterval,
	maxAge ExpirationMaxAge,
) *demande_expiration.DemandeExpiration {
	return demande_expiration.NewDemandeExpiration(log, demandeService, time.Duration(interval), time.Duration(maxAge))
}

func provideIdentityProbeTask(
	log logger.Logger,
	gateway identity_probe.Gateway,
	interval IdentityProbeInterval,
) *identity_probe.IdentityProbe {
	return identity_probe.NewIdentityProbe(log, gateway, time.Duration(interval))
}

func provideTaskList(
	demandeExpirationTask *demande_expiration.DemandeExpiration,
	identityProbeTask *identity_probe.IdentityProbe,
) []background.Task {
	return []background.Task{
		demandeExpirationTask,
		identityProbeTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

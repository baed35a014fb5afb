package bootstrap

import (
	"strings"

	"go.opentelemetry.io/otel"

	httpin "github.com/kartevonmorgen/openfairdb/internal/adapters/http/in"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/clearance"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/comment"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/event"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/organization"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/place"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/rating"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/subscription"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/tag"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/token"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/user"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/rabbitmq"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/redis"
	"github.com/kartevonmorgen/openfairdb/internal/gateways"
	"github.com/kartevonmorgen/openfairdb/internal/services/command"
	"github.com/kartevonmorgen/openfairdb/internal/services/query"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mpostgres"
	"github.com/kartevonmorgen/openfairdb/pkg/mrabbitmq"
	"github.com/kartevonmorgen/openfairdb/pkg/mredis"
	"github.com/kartevonmorgen/openfairdb/pkg/mzap"
)

// Config is the top level configuration struct for the entire application.
type Config struct {
	EnvName       string `env:"ENV_NAME"`
	Version       string `env:"VERSION"`
	ServerAddress string `env:"SERVER_ADDRESS"`
	LogLevel      string `env:"LOG_LEVEL"`

	PrimaryDBURL  string `env:"DATABASE_URL"`
	ReplicaDBURL  string `env:"DATABASE_REPLICA_URL"`
	PrimaryDBName string `env:"DATABASE_NAME"`
	ReplicaDBName string `env:"DATABASE_REPLICA_NAME"`
	MaxReadConns  int    `env:"DATABASE_MAX_READ_CONNECTIONS"`

	MigrationsPath string `env:"MIGRATIONS_PATH"`

	IndexDir string `env:"INDEX_DIR"`

	RabbitURI      string `env:"RABBITMQ_URI"`
	RabbitExchange string `env:"RABBITMQ_EXCHANGE"`

	RedisURI string `env:"REDIS_URI"`

	MapboxToken string `env:"MAPBOX_TOKEN"`

	AcceptedLicenses string `env:"ACCEPT_LICENSES"`
}

// InitServers initializes the service with all its adapters wired.
func InitServers() *Service {
	cfg := &Config{}

	if err := pkg.SetConfigFromEnvVars(cfg); err != nil {
		panic(err)
	}

	logger := mzap.InitializeLogger()

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = ":6767"
	}

	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	if cfg.ReplicaDBURL == "" {
		cfg.ReplicaDBURL = cfg.PrimaryDBURL
	}

	if cfg.RabbitExchange == "" {
		cfg.RabbitExchange = "openfairdb.notifications"
	}

	postgresConnection := &mpostgres.PostgresConnection{
		ConnectionStringPrimary: cfg.PrimaryDBURL,
		ConnectionStringReplica: cfg.ReplicaDBURL,
		PrimaryDBName:           cfg.PrimaryDBName,
		ReplicaDBName:           cfg.ReplicaDBName,
		MigrationsPath:          cfg.MigrationsPath,
		MaxOpenConnections:      cfg.MaxReadConns,
		Logger:                  logger,
	}

	rabbitConnection := &mrabbitmq.RabbitMQConnection{
		ConnectionStringSource: cfg.RabbitURI,
		Exchange:               cfg.RabbitExchange,
		Logger:                 logger,
	}

	redisConnection := &mredis.RedisConnection{
		ConnectionStringSource: cfg.RedisURI,
		Logger:                 logger,
	}

	searchEngine, err := bleve.NewSearchEngine(cfg.IndexDir, logger)
	if err != nil {
		logger.Fatalf("Failed to open search index: %v", err)

		panic(err)
	}

	placeRepository := place.NewPlacePostgreSQLRepository(postgresConnection)
	eventRepository := event.NewEventPostgreSQLRepository(postgresConnection)
	ratingRepository := rating.NewRatingPostgreSQLRepository(postgresConnection)
	commentRepository := comment.NewCommentPostgreSQLRepository(postgresConnection)
	userRepository := user.NewUserPostgreSQLRepository(postgresConnection)
	organizationRepository := organization.NewOrganizationPostgreSQLRepository(postgresConnection)
	clearanceRepository := clearance.NewClearancePostgreSQLRepository(postgresConnection)
	tokenRepository := token.NewTokenPostgreSQLRepository(postgresConnection)
	subscriptionRepository := subscription.NewSubscriptionPostgreSQLRepository(postgresConnection)
	tagRepository := tag.NewTagPostgreSQLRepository(postgresConnection)

	producer := rabbitmq.NewProducerRabbitMQ(rabbitConnection)
	redisRepository := redis.NewConsumerRedis(redisConnection)

	notificationGateway := gateways.NewRabbitMQNotificationGateway(producer)
	geoCodingGateway := gateways.NewMapboxGeoCodingGateway(cfg.MapboxToken)

	commandUseCase := &command.UseCase{
		PlaceRepo:        placeRepository,
		EventRepo:        eventRepository,
		RatingRepo:       ratingRepository,
		CommentRepo:      commentRepository,
		UserRepo:         userRepository,
		OrganizationRepo: organizationRepository,
		ClearanceRepo:    clearanceRepository,
		TokenRepo:        tokenRepository,
		SubscriptionRepo: subscriptionRepository,
		TagRepo:          tagRepository,
		PlaceIndex:       searchEngine,
		EventIndex:       searchEngine,
		Notifications:    notificationGateway,
		GeoCoding:        geoCodingGateway,
		AcceptedLicenses: acceptedLicenseSet(cfg.AcceptedLicenses),
	}

	queryUseCase := &query.UseCase{
		PlaceRepo:        placeRepository,
		EventRepo:        eventRepository,
		RatingRepo:       ratingRepository,
		CommentRepo:      commentRepository,
		UserRepo:         userRepository,
		OrganizationRepo: organizationRepository,
		ClearanceRepo:    clearanceRepository,
		SubscriptionRepo: subscriptionRepository,
		TagRepo:          tagRepository,
		PlaceIndex:       searchEngine,
		EventIndex:       searchEngine,
		RedisRepo:        redisRepository,
	}

	tracer := otel.Tracer("openfairdb")

	app := httpin.NewRouter(logger, tracer, organizationRepository, cfg.Version,
		&httpin.EntryHandler{Command: commandUseCase, Query: queryUseCase},
		&httpin.EventHandler{Command: commandUseCase, Query: queryUseCase},
		&httpin.RatingHandler{Command: commandUseCase, Query: queryUseCase},
		&httpin.UserHandler{Command: commandUseCase, Query: queryUseCase},
		&httpin.SearchHandler{Query: queryUseCase},
		&httpin.ExportHandler{Query: queryUseCase},
		&httpin.CountHandler{Query: queryUseCase},
		&httpin.ClearanceHandler{Command: commandUseCase, Query: queryUseCase},
	)

	logger.Infof("Service configured on %s", cfg.ServerAddress)

	return &Service{
		Server:  NewServer(cfg, app, logger),
		Command: commandUseCase,
		Logger:  logger,
	}
}

// acceptedLicenseSet parses the comma-separated accepted-license list,
// falling back to the licenses the public directory accepts by default.
func acceptedLicenseSet(raw string) map[string]struct{} {
	set := make(map[string]struct{})

	if strings.TrimSpace(raw) == "" {
		raw = "CC0-1.0,ODbL-1.0"
	}

	for _, license := range strings.Split(raw, ",") {
		license = strings.TrimSpace(license)
		if license != "" {
			set[license] = struct{}{}
		}
	}

	return set
}

package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Configure(logrus.InfoLevel.String())
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource := datasetSource(ctx, cfg)
	defer closeSource()

	dashboardService := dashboarding.NewService(source, cfg.Dashboard.TopProducts)

	// Sem dataset não há painel: erro de carga na inicialização é fatal
	if _, err := dashboardService.ReloadDataset(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset de vendas")
	}

	authenticator := authenticating.NewService(cfg)

	datasetReloadService := scheduler.NewDatasetReloadService(dashboardService, cfg)
	if err := datasetReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		datasetReloadService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// datasetSource escolhe a origem do dataset conforme DATASET_SOURCE
func datasetSource(ctx context.Context, cfg *config.Config) (dataset.Source, func()) {
	if cfg.Dataset.Source != config.DatasetSourcePostgres {
		logrus.WithField("path", cfg.Dataset.Path).Info("Dataset será carregado de arquivo")
		return dataset.NewFileSource(cfg.Dataset.Path, dataset.Options{
			Delimiter: cfg.Dataset.DelimiterRune(),
			Sheet:     cfg.Dataset.Sheet,
		}), func() {}
	}

	pgConn := pgconn(ctx, cfg.Database)
	salesRepo := repository.NewSalesRecordRepository(pgConn, cfg.Dataset.Table)

	logrus.WithField("table", cfg.Dataset.Table).Info("Dataset será carregado do PostgreSQL")
	return dataset.NewRepositorySource(salesRepo, cfg.Dataset.Table), func() { _ = pgConn.Close() }
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logrus.SetReportCaller(true)
	logrus.Info("Iniciando script de carga de vendas...")
}

// datasetPath usa o primeiro argumento, se informado, ou o caminho configurado
func datasetPath(cfg *config.Config) string {
	if len(os.Args) > 1 && os.Args[1] != "" {
		return os.Args[1]
	}
	return cfg.Dataset.Path
}

func main() {
	setupLogger()
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	path := datasetPath(cfg)
	logrus.Infof("Lendo dataset %s...", path)

	table, err := dataset.LoadWithOptions(path, dataset.Options{
		Delimiter: cfg.Dataset.DelimiterRune(),
		Sheet:     cfg.Dataset.Sheet,
	})
	if err != nil {
		logrus.Fatalf("ERRO ao ler dataset: %v", err)
	}
	logrus.Infof("Total de %d vendas lidas para inserção", table.Len())

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	repo := repository.NewSalesRecordRepository(conn, cfg.Dataset.Table)
	if err := repo.EnsureSchema(ctx); err != nil {
		logrus.Fatalf("ERRO ao criar tabela de vendas: %v", err)
	}

	startTime := time.Now()
	inserted, err := repo.SaveSalesRecords(ctx, table.Records())
	if err != nil {
		logrus.Fatalf("ERRO ao inserir vendas: %v", err)
	}

	logrus.Infof("Carga concluída em %v! %d vendas inseridas", time.Since(startTime), inserted)
}

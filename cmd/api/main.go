package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reporting-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reporting-api/infrastructure/repository"
	"github.com/vfg2006/sales-reporting-api/internal/api"
	"github.com/vfg2006/sales-reporting-api/internal/config"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-reporting-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	rawSaleRepo := repository.NewRawSaleRepository(pgConn)
	dataSourceRepo := repository.NewDataSourceRepository(pgConn)
	summaryReportRepo := repository.NewSummaryReportRepository(pgConn)
	automationLogRepo := repository.NewAutomationLogRepository(pgConn)

	ingester := ingesting.NewService(rawSaleRepo, dataSourceRepo, cfg)
	reporter := reporting.NewService(summaryReportRepo, automationLogRepo)

	if cfg.Ingestion.SourceMode == config.SourceModeLegacy {
		logrus.Warn("INGESTION_SOURCE_MODE=legacy: uploads sem source_id serão associados a uma data_source arbitrária")
	}

	server, err := api.New(cfg, pgConn, ingester, reporter)
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

// pgconn abre o pool de conexões; sem banco a aplicação não sobe
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(connectCtx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"host":     dbConfig.Host,
			"port":     dbConfig.Port,
			"database": dbConfig.Name,
		}).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-collector-api/internal/api"
	"github.com/vfg2006/roi-collector-api/internal/app"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/internal/scheduler"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()
	utils.UseNumericDecimalJSON()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
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

	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer application.Close()

	collectionSyncService := scheduler.NewCollectionSyncService(application.Collector, cfg)

	// Inicia o agendador em background
	if err := collectionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de coletas")
	} else {
		logrus.Info("Agendador de coletas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Reporter:  application.Reporter,
		Collector: application.Collector,
		Settings:  application.Settings,
		Cron:      collectionSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

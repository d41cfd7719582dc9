package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo"
	"github.com/vfg2006/fudo-analytics-api/infrastructure/integrator/fudo/fudoclient"
	"github.com/vfg2006/fudo-analytics-api/internal/api"
	"github.com/vfg2006/fudo-analytics-api/internal/config"
	"github.com/vfg2006/fudo-analytics-api/internal/scheduler"
	"github.com/vfg2006/fudo-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/fudo-analytics-api/internal/usecases/normalizing"
	"github.com/vfg2006/fudo-analytics-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

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

	authenticator := authenticating.NewService(cfg)

	tokenManager := fudoclient.NewTokenManager(cfg)
	fudoClient := fudoclient.NewClient(cfg, tokenManager)
	fudoIntegrator := fudo.New(cfg, fudoClient)

	if cfg.Fudo.HasCredentials() {
		checkFudoConnection(ctx, fudoIntegrator)
	}

	normalizer := normalizing.NewService(cfg.App.Timezone)

	// Inicializa o serviço de relatórios com suporte a cache
	reportService := reporting.NewService(cfg, fudoIntegrator, normalizer)
	if cfg.ReportCache.Enabled {
		reportService = reportService.WithCache()
	}

	// Inicializa o agendador de pré-aquecimento de relatórios
	reportWarmupService := scheduler.NewReportWarmupService(reportService, cfg)

	if err := reportWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de pré-aquecimento de relatórios")
	} else {
		logrus.Info("Agendador de pré-aquecimento de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		authenticator,
		reportWarmupService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// checkFudoConnection testa a conectividade com a API da Fudo na subida.
// Falha aqui não derruba o serviço, que passa a servir dados de exemplo
func checkFudoConnection(ctx context.Context, integrator fudo.FudoIntegrator) {
	checkCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	ok, err := integrator.CheckConnection(checkCtx)
	if err != nil || !ok {
		logrus.WithError(err).Warn("Não foi possível conectar à API da Fudo")
		return
	}

	logrus.Info("Conexão com a API da Fudo estabelecida com sucesso")
}

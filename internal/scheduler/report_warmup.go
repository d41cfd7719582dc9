package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fudo-analytics-api/internal/config"
	"github.com/vfg2006/fudo-analytics-api/internal/usecases/reporting"
)

// ReportWarmupConfig representa a configuração do agendador de pré-aquecimento de relatórios
type ReportWarmupConfig struct {
	CronSchedule  string
	LookbackDays  int
	WarmupEnabled bool
}

// ReportWarmupService agenda a geração periódica do relatório dos últimos
// dias, mantendo o cache quente para que o dashboard responda sem esperar a
// paginação da Fudo
type ReportWarmupService struct {
	scheduler          *gocron.Scheduler
	config             ReportWarmupConfig
	reportService      reporting.Analyzer
	warmupRunning      bool
	warmupMutex        sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewReportWarmupService cria uma nova instância do serviço de pré-aquecimento de relatórios
func NewReportWarmupService(
	reportService reporting.Analyzer,
	appConfig *config.Config,
) *ReportWarmupService {
	warmupConfig := ReportWarmupConfig{
		CronSchedule:  appConfig.ReportWarmup.CronSchedule,
		LookbackDays:  appConfig.ReportWarmup.LookbackDays,
		WarmupEnabled: appConfig.ReportWarmup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  warmupConfig.CronSchedule,
		"lookback_days":  warmupConfig.LookbackDays,
		"warmup_enabled": warmupConfig.WarmupEnabled,
	}).Info("Configuração do agendador de pré-aquecimento de relatórios carregada")

	return &ReportWarmupService{
		scheduler:     scheduler,
		config:        warmupConfig,
		reportService: reportService,
		warmupRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportWarmupService) Start(ctx context.Context) error {
	if !s.config.WarmupEnabled {
		logrus.Info("Pré-aquecimento de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de pré-aquecimento de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmupReports(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pré-aquecimento de relatórios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de pré-aquecimento de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// warmupReports regenera o relatório do período de lookback
func (s *ReportWarmupService) warmupReports(ctx context.Context) {
	s.warmupMutex.Lock()
	if s.warmupRunning {
		s.warmupMutex.Unlock()
		logrus.Info("Pré-aquecimento de relatórios já em andamento, ignorando")
		return
	}
	s.warmupRunning = true
	s.warmupMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.warmupMutex.Lock()
		s.warmupRunning = false
		s.warmupMutex.Unlock()
	}()

	logrus.WithField("lookback_days", s.config.LookbackDays).
		Info("Iniciando pré-aquecimento do relatório de vendas")

	report, err := s.reportService.FetchAndAnalyzeLastDays(ctx, s.config.LookbackDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao pré-aquecer relatório de vendas")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":     duration.String(),
		"source":       report.Source,
		"transactions": report.Metrics.TransactionCount,
	}).Info("Pré-aquecimento do relatório de vendas concluído")

	s.lastRunCompletedAt = time.Now()
}

// TriggerManualWarmup inicia manualmente um pré-aquecimento
func (s *ReportWarmupService) TriggerManualWarmup(ctx context.Context) {
	s.warmupMutex.Lock()
	if s.warmupRunning {
		s.warmupMutex.Unlock()
		logrus.Info("Pré-aquecimento de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.warmupMutex.Unlock()

	logrus.Info("Iniciando pré-aquecimento manual de relatórios")
	go s.warmupReports(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *ReportWarmupService) GetStatus() map[string]any {
	return map[string]any{
		"warmup_enabled":        s.config.WarmupEnabled,
		"warmup_cron":           s.config.CronSchedule,
		"warmup_lookback_days":  s.config.LookbackDays,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}

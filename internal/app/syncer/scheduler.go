package syncer

import (
	"context"
	"time"

	"licensehub/internal/app/derive"
	"licensehub/internal/app/ds"
	"licensehub/internal/app/notify"
	"licensehub/internal/app/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler запускает фоновые задачи по cron-расписанию:
// синхронизацию провайдеров и ночной обход предупреждений
type Scheduler struct {
	cron        *cron.Cron
	syncer      *Syncer
	repository  *repository.Repository
	slackClient *notify.SlackClient
}

func NewScheduler(syncer *Syncer, r *repository.Repository, slackClient *notify.SlackClient) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		syncer:      syncer,
		repository:  r,
		slackClient: slackClient,
	}
}

// Start регистрирует задачи и запускает планировщик
func (s *Scheduler) Start(syncCron, scanCron string) error {
	if _, err := s.cron.AddFunc(syncCron, func() {
		s.syncer.SyncAll(context.Background())
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc(scanCron, func() {
		s.ScanWarnings(context.Background())
	}); err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("scheduler started: sync %q, scan %q", syncCron, scanCron)
	return nil
}

// Stop останавливает планировщик, дожидаясь завершения текущих задач
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logrus.Info("scheduler stopped")
}

// ScanWarnings собирает предупреждения по всей базе и доставляет в Slack
// те типы, для которых включены правила уведомлений. Сбои отдельных
// выборок логируются и не прерывают обход
func (s *Scheduler) ScanWarnings(ctx context.Context) {
	slackCfg, err := s.repository.GetSlackConfig()
	if err != nil {
		logrus.Error("scan: error getting slack config: ", err)
		return
	}
	if !slackCfg.Enabled || slackCfg.WebhookURL == "" {
		logrus.Info("scan: slack integration disabled, skipping")
		return
	}

	rules, err := s.repository.GetEnabledNotificationRules()
	if err != nil {
		logrus.Error("scan: error getting notification rules: ", err)
		return
	}
	if len(rules) == 0 {
		logrus.Info("scan: no enabled notification rules, skipping")
		return
	}
	enabledTypes := make(map[string]bool, len(rules))
	for _, rule := range rules {
		enabledTypes[rule.WarningType] = true
	}

	warnings := s.collectWarnings()

	// Доставляются только типы с включённым правилом
	selected := []derive.Warning{}
	for _, w := range warnings {
		if enabledTypes[w.Type] {
			selected = append(selected, w)
		}
	}
	if len(selected) == 0 {
		logrus.Info("scan: no warnings to deliver")
		return
	}

	if err := s.slackClient.SendWarnings(ctx, slackCfg.WebhookURL, slackCfg.Channel, selected); err != nil {
		logrus.Error("scan: error sending slack notification: ", err)
		return
	}
	logrus.Infof("scan: delivered %d warnings", len(selected))
}

func (s *Scheduler) collectWarnings() []derive.Warning {
	rows, err := s.repository.GetLicenseRows(0)
	if err != nil {
		logrus.Error("scan: error getting licenses: ", err)
		rows = []derive.LicenseRow{}
	}

	contracts := []derive.ContractInfo{}
	packages, err := s.repository.GetPackages(0)
	if err != nil {
		logrus.Error("scan: error getting packages: ", err)
		packages = []ds.LicensePackage{}
	}
	for _, pkg := range packages {
		used, err := s.repository.CountActiveLicenses(pkg.ProviderID)
		if err != nil {
			logrus.Errorf("scan: error counting licenses for package %d: %v", pkg.ID, err)
			continue
		}
		contracts = append(contracts, derive.ContractInfo{
			PackageID:            pkg.ID,
			ProviderName:         pkg.Provider.DisplayName,
			Name:                 pkg.Name,
			TotalSeats:           pkg.TotalSeats,
			UsedSeats:            used,
			ContractEnd:          pkg.ContractEnd,
			CancellationDeadline: pkg.CancellationDeadline,
			CancelledAt:          pkg.CancelledAt,
		})
	}

	thresholds, err := s.repository.GetThresholdSettings()
	if err != nil {
		logrus.Error("scan: error getting thresholds: ", err)
		thresholds = &ds.ThresholdSettings{
			ExpiryWarningDays:     60,
			LowUtilizationDays:    90,
			LowUtilizationPercent: 50,
		}
	}

	return derive.Warnings(rows, contracts, derive.Thresholds{
		ExpiryWarningDays:     thresholds.ExpiryWarningDays,
		LowUtilizationDays:    thresholds.LowUtilizationDays,
		LowUtilizationPercent: thresholds.LowUtilizationPercent,
	}, time.Now())
}

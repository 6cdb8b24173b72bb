package syncer

import (
	"context"
	"fmt"

	"licensehub/internal/app/ds"
	"licensehub/internal/app/pricing"
	"licensehub/internal/app/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Syncer сверяет лицензии в базе с выгрузками провайдеров и ведёт
// журнал запусков
type Syncer struct {
	Repository *repository.Repository
}

func NewSyncer(r *repository.Repository) *Syncer {
	return &Syncer{Repository: r}
}

// SyncProvider выполняет один цикл синхронизации провайдера:
// выгрузка, сверка построчно, деактивация пропавших лицензий.
// Каждый запуск фиксируется в журнале независимо от исхода
func (s *Syncer) SyncProvider(ctx context.Context, provider *ds.Provider) (*ds.SyncRun, error) {
	connector, err := ForProvider(provider)
	if err != nil {
		return nil, err
	}

	run := &ds.SyncRun{
		RunUUID:    uuid.NewString(),
		ProviderID: provider.ID,
	}
	if err := s.Repository.CreateSyncRun(run); err != nil {
		return nil, fmt.Errorf("failed to open sync run: %w", err)
	}

	remote, err := connector.FetchLicenses(ctx, provider)
	if err != nil {
		logrus.Errorf("sync %s: fetch failed: %v", provider.Name, err)
		_ = s.Repository.FinishSyncRun(run, ds.SyncStatusFailed, err.Error())
		return run, err
	}
	run.Fetched = len(remote)

	// Цены провайдера применяются к новым строкам сразу при создании
	priceByType, err := s.Repository.GetProviderPricing(provider.ID)
	if err != nil {
		logrus.Errorf("sync %s: error getting pricing: %v", provider.Name, err)
		priceByType = map[string]ds.LicenseTypePricing{}
	}

	seen := make(map[string]bool, len(remote))
	for _, license := range remote {
		seen[license.ExternalUserID] = true

		if p, ok := priceByType[license.LicenseType]; ok {
			license.MonthlyCost = pricing.MonthlyEquivalent(p.Cost, p.BillingCycle)
			license.Currency = p.Currency
		}

		created, err := s.Repository.UpsertSyncedLicense(provider.ID, license)
		if err != nil {
			logrus.Errorf("sync %s: error upserting %s: %v", provider.Name, license.ExternalUserID, err)
			_ = s.Repository.FinishSyncRun(run, ds.SyncStatusFailed, err.Error())
			return run, err
		}
		if created {
			run.Created++
		} else {
			run.Updated++
		}
	}

	deactivated, err := s.Repository.DeactivateMissingLicenses(provider.ID, seen)
	run.Deleted = deactivated
	if err != nil {
		logrus.Errorf("sync %s: error deactivating missing licenses: %v", provider.Name, err)
		_ = s.Repository.FinishSyncRun(run, ds.SyncStatusFailed, err.Error())
		return run, err
	}

	if err := s.Repository.FinishSyncRun(run, ds.SyncStatusCompleted, ""); err != nil {
		return run, err
	}

	logrus.Infof("sync %s: fetched=%d created=%d updated=%d deactivated=%d",
		provider.Name, run.Fetched, run.Created, run.Updated, run.Deleted)
	return run, nil
}

// SyncAll обходит всех синхронизируемых провайдеров. Сбой одного
// провайдера не прерывает обход остальных
func (s *Syncer) SyncAll(ctx context.Context) {
	providers, err := s.Repository.GetSyncableProviders()
	if err != nil {
		logrus.Error("sync: error getting providers: ", err)
		return
	}

	for i := range providers {
		if _, err := s.SyncProvider(ctx, &providers[i]); err != nil {
			logrus.Errorf("sync: provider %s failed: %v", providers[i].Name, err)
		}
	}
}

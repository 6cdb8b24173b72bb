package repository

import (
	"errors"
	"fmt"

	"licensehub/internal/app/ds"

	"gorm.io/gorm"
)

// Методы страницы Settings: способы оплаты, правила уведомлений, пороги, Slack

// ============ Способы оплаты ============

func (r *Repository) GetPaymentMethods() ([]ds.PaymentMethod, error) {
	var methods []ds.PaymentMethod
	err := r.db.Order("id").Find(&methods).Error
	return methods, err
}

func (r *Repository) CreatePaymentMethod(method *ds.PaymentMethod) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if method.IsDefault {
			// Единственный способ оплаты по умолчанию
			if err := tx.Model(&ds.PaymentMethod{}).Where("is_default").Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(method).Error
	})
}

func (r *Repository) UpdatePaymentMethod(method *ds.PaymentMethod) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if method.IsDefault {
			if err := tx.Model(&ds.PaymentMethod{}).Where("is_default AND id <> ?", method.ID).Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(method).Error
	})
}

func (r *Repository) GetPaymentMethodByID(id uint) (*ds.PaymentMethod, error) {
	var method ds.PaymentMethod
	err := r.db.First(&method, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("способ оплаты не найден")
		}
		return nil, err
	}
	return &method, nil
}

func (r *Repository) DeletePaymentMethod(id uint) error {
	result := r.db.Delete(&ds.PaymentMethod{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("способ оплаты не найден")
	}
	return nil
}

// ============ Правила уведомлений ============

func (r *Repository) GetNotificationRules() ([]ds.NotificationRule, error) {
	var rules []ds.NotificationRule
	err := r.db.Order("id").Find(&rules).Error
	return rules, err
}

func (r *Repository) GetEnabledNotificationRules() ([]ds.NotificationRule, error) {
	var rules []ds.NotificationRule
	err := r.db.Where("enabled").Order("id").Find(&rules).Error
	return rules, err
}

func (r *Repository) CreateNotificationRule(rule *ds.NotificationRule) error {
	return r.db.Create(rule).Error
}

func (r *Repository) GetNotificationRuleByID(id uint) (*ds.NotificationRule, error) {
	var rule ds.NotificationRule
	err := r.db.First(&rule, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("правило уведомлений не найдено")
		}
		return nil, err
	}
	return &rule, nil
}

func (r *Repository) UpdateNotificationRule(rule *ds.NotificationRule) error {
	return r.db.Save(rule).Error
}

func (r *Repository) DeleteNotificationRule(id uint) error {
	result := r.db.Delete(&ds.NotificationRule{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("правило уведомлений не найдено")
	}
	return nil
}

// ============ Пороги предупреждений ============

// GetThresholdSettings возвращает пороги компании, создавая строку
// со значениями по умолчанию при первом обращении
func (r *Repository) GetThresholdSettings() (*ds.ThresholdSettings, error) {
	var settings ds.ThresholdSettings
	err := r.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = ds.ThresholdSettings{
			ExpiryWarningDays:     60,
			LowUtilizationDays:    90,
			LowUtilizationPercent: 50,
		}
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *Repository) SaveThresholdSettings(settings *ds.ThresholdSettings) error {
	current, err := r.GetThresholdSettings()
	if err != nil {
		return err
	}
	settings.ID = current.ID
	return r.db.Save(settings).Error
}

// ============ Slack ============

func (r *Repository) GetSlackConfig() (*ds.SlackConfig, error) {
	var cfg ds.SlackConfig
	err := r.db.First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ds.SlackConfig{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *Repository) SaveSlackConfig(cfg *ds.SlackConfig) error {
	current, err := r.GetSlackConfig()
	if err != nil {
		return err
	}
	cfg.ID = current.ID
	return r.db.Save(cfg).Error
}

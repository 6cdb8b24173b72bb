package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"licensehub/internal/app/ds"
)

// Connector выгружает текущий список лицензий со стороны провайдера
type Connector interface {
	FetchLicenses(ctx context.Context, provider *ds.Provider) ([]ds.License, error)
}

// remoteLicense — строка выгрузки в формате интеграционного API провайдера
type remoteLicense struct {
	ExternalUserID   string     `json:"external_user_id"`
	Status           string     `json:"status"`
	LicenseType      string     `json:"license_type"`
	LicenseTypeName  *string    `json:"license_type_name"`
	IsServiceAccount bool       `json:"is_service_account"`
	IsAdminAccount   bool       `json:"is_admin_account"`
	LastActivityAt   *time.Time `json:"last_activity_at"`
}

// restConnector читает выгрузку по HTTP: адрес и токен берутся из
// config-мешка провайдера (api_url, api_token)
type restConnector struct {
	client *http.Client
}

func newRESTConnector() *restConnector {
	return &restConnector{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *restConnector) FetchLicenses(ctx context.Context, provider *ds.Provider) ([]ds.License, error) {
	apiURL := provider.ConfigString("api_url")
	if apiURL == "" {
		return nil, fmt.Errorf("провайдер %s: не задан api_url", provider.Name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync request: %w", err)
	}
	if token := provider.ConfigString("api_token"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch licenses: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider API returned status %d", resp.StatusCode)
	}

	var remote []remoteLicense
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	licenses := make([]ds.License, 0, len(remote))
	for _, r := range remote {
		status := r.Status
		if status == "" {
			status = "active"
		}
		licenses = append(licenses, ds.License{
			ProviderID:       provider.ID,
			ExternalUserID:   r.ExternalUserID,
			Status:           status,
			LicenseType:      r.LicenseType,
			LicenseTypeName:  r.LicenseTypeName,
			IsServiceAccount: r.IsServiceAccount,
			IsAdminAccount:   r.IsAdminAccount,
			LastActivityAt:   r.LastActivityAt,
		})
	}
	return licenses, nil
}

// ForProvider подбирает коннектор по типу провайдера. Для ручных
// провайдеров синхронизации нет — лицензии ведутся локальным CRUD-ом
func ForProvider(provider *ds.Provider) (Connector, error) {
	if provider.IsManual() {
		return nil, fmt.Errorf("провайдер %s ведётся вручную и не синхронизируется", provider.Name)
	}
	return newRESTConnector(), nil
}

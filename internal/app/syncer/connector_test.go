package syncer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"licensehub/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForProviderManual(t *testing.T) {
	manual := &ds.Provider{Name: "manual"}
	_, err := ForProvider(manual)
	require.Error(t, err)

	byConfig := &ds.Provider{
		Name:   "spreadsheet_licenses",
		Config: map[string]interface{}{"provider_type": "manual"},
	}
	_, err = ForProvider(byConfig)
	require.Error(t, err)
}

func TestRESTConnectorFetchLicenses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"external_user_id": "alice@corp.com", "status": "active", "license_type": "business_plus"},
			{"external_user_id": "backup@corp.com", "license_type": "business_plus", "is_service_account": true}
		]`))
	}))
	defer server.Close()

	provider := &ds.Provider{
		ID:   7,
		Name: "google_workspace",
		Config: map[string]interface{}{
			"api_url":   server.URL,
			"api_token": "secret-token",
		},
	}

	connector, err := ForProvider(provider)
	require.NoError(t, err)

	licenses, err := connector.FetchLicenses(context.Background(), provider)
	require.NoError(t, err)
	require.Len(t, licenses, 2)

	assert.Equal(t, uint(7), licenses[0].ProviderID)
	assert.Equal(t, "alice@corp.com", licenses[0].ExternalUserID)
	assert.Equal(t, "active", licenses[0].Status)

	// Пустой статус в выгрузке трактуется как active
	assert.Equal(t, "active", licenses[1].Status)
	assert.True(t, licenses[1].IsServiceAccount)
}

func TestRESTConnectorMissingURL(t *testing.T) {
	provider := &ds.Provider{Name: "google_workspace", Config: map[string]interface{}{}}

	connector, err := ForProvider(provider)
	require.NoError(t, err)

	_, err = connector.FetchLicenses(context.Background(), provider)
	require.Error(t, err)
}

func TestRESTConnectorAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	provider := &ds.Provider{
		Name:   "google_workspace",
		Config: map[string]interface{}{"api_url": server.URL},
	}

	connector, err := ForProvider(provider)
	require.NoError(t, err)

	_, err = connector.FetchLicenses(context.Background(), provider)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

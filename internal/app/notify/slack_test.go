package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"licensehub/internal/app/derive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWarnings(t *testing.T) {
	var received slackMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewSlackClient()
	warnings := []derive.Warning{
		{Type: derive.WarnUnmatched, ProviderName: "Google Workspace", Message: "лицензия ghost@corp.com не сопоставлена с сотрудником"},
		{Type: derive.WarnExpiringContract, Message: "контракт заканчивается через 10 дней"},
	}

	err := client.SendWarnings(context.Background(), server.URL, "#licenses", warnings)
	require.NoError(t, err)

	assert.Equal(t, "#licenses", received.Channel)
	// Заголовок плюс секция на каждое предупреждение
	require.Len(t, received.Blocks, 3)
	assert.Equal(t, "header", received.Blocks[0].Type)
	assert.Contains(t, received.Blocks[1].Text.Text, "Google Workspace")
}

func TestSendWarningsEmptySkipsRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	err := NewSlackClient().SendWarnings(context.Background(), server.URL, "", nil)
	require.NoError(t, err)
	assert.False(t, called)
}

func TestSendTestMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := NewSlackClient().SendTestMessage(context.Background(), server.URL, "#licenses")
	require.NoError(t, err)
}

func TestPostNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := NewSlackClient().SendTestMessage(context.Background(), server.URL, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

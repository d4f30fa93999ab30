package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/november7co/memberqa/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	tests := []struct {
		name         string
		mockServer   func() *httptest.Server
		wantErr      bool
		wantMessages int
	}{
		{
			name: "successful bare list",
			mockServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					fmt.Fprint(w, `[{"member_name":"Vikram","text":"I have 2 cars."},{"member_name":"Layla","text":"Traveling to Dubai."}]`)
				}))
			},
			wantMessages: 2,
		},
		{
			name: "successful items wrapper",
			mockServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					fmt.Fprint(w, `{"items":[{"member_name":"Amira","text":"hello"}]}`)
				}))
			},
			wantMessages: 1,
		},
		{
			name: "upstream 500",
			mockServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				}))
			},
			wantErr: true,
		},
		{
			name: "non-list payload",
			mockServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					fmt.Fprint(w, `{"status":"ok"}`)
				}))
			},
			wantErr: true,
		},
		{
			name: "empty message set",
			mockServer: func() *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					fmt.Fprint(w, `[{"text":"  "}]`)
				}))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := tt.mockServer()
			defer server.Close()

			client := NewClientWithTimeout(server.URL, 5*time.Second)
			messages, err := client.Fetch(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, core.ErrUpstream)
				return
			}
			require.NoError(t, err)
			assert.Len(t, messages, tt.wantMessages)
		})
	}
}

func TestClient_FetchConnectionRefused(t *testing.T) {
	client := NewClientWithTimeout("http://127.0.0.1:1", time.Second)

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUpstream)
}

func TestClient_FetchRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"member_name":"A","text":""},{"member_name":"B","text":"kept"}]`)
	}))
	defer server.Close()

	client := NewClientWithTimeout(server.URL, 5*time.Second)
	items, err := client.FetchRaw(context.Background())
	require.NoError(t, err)

	// FetchRaw keeps unusable entries: the inspect report wants them.
	assert.Len(t, items, 2)
	assert.Equal(t, "A", items[0]["member_name"])
}

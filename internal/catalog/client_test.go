package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/catalog"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/config"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *catalog.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return catalog.NewClient(config.Catalog{BaseURL: srv.URL + "/", Timeout: time.Second})
}

func TestClient_GetEvent(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"name":"Jazz Night","isoDate":"2026-11-01","startTime":"19:00:00","endTime":"23:00:00","location":"Hall A","imageUrl":"http://img/7.png","price":15.50}`))
	})

	event, err := client.GetEvent(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), event.ID)
	assert.Equal(t, "Jazz Night", event.Name)
	assert.Equal(t, "2026-11-01", event.Date)
	assert.Equal(t, "Hall A", event.Location)
	assert.True(t, decimal.RequireFromString("15.5").Equal(event.Price))
}

func TestClient_GetVariation(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/variations/3", r.URL.Path)
		w.Write([]byte(`{"id":3,"name":"0.5L","productName":"Beer","price":"4.50","stock":120}`))
	})

	v, err := client.GetVariation(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), v.ID)
	assert.Equal(t, "0.5L", v.Name)
	assert.Equal(t, "Beer", v.ProductName)
	assert.Equal(t, 120, v.Stock)
	assert.True(t, decimal.RequireFromString("4.5").Equal(v.Price))
}

func TestClient_GetVariation_TrailingZeros(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":3,"name":"0.5L","productName":"Beer","price":"4.500"}`))
	})

	v, err := client.GetVariation(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "4.50", v.Price.StringFixed(2))
}

func TestClient_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: entities.ErrVariationNotFound,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: entities.ErrDependencyUnavailable,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"id":`))
			},
			wantErr: entities.ErrDependencyUnavailable,
		},
		{
			name: "missing price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"id":3,"name":"0.5L","productName":"Beer"}`))
			},
			wantErr: entities.ErrDependencyUnavailable,
		},
		{
			name: "sub-cent price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"id":3,"name":"0.5L","productName":"Beer","price":0.335}`))
			},
			wantErr: entities.ErrDependencyUnavailable,
		},
		{
			name: "negative price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"id":3,"name":"0.5L","productName":"Beer","price":-1.50}`))
			},
			wantErr: entities.ErrDependencyUnavailable,
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(500 * time.Millisecond):
				case <-r.Context().Done():
				}
			},
			wantErr: entities.ErrDependencyUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()
			client := catalog.NewClient(config.Catalog{BaseURL: srv.URL, Timeout: 100 * time.Millisecond})

			_, err := client.GetVariation(context.Background(), 3)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestClient_EventNotFound(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetEvent(context.Background(), 99)
	assert.ErrorIs(t, err, entities.ErrEventNotFound)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := catalog.NewClient(config.Catalog{BaseURL: url, Timeout: time.Second})
	_, err := client.GetEvent(context.Background(), 1)
	assert.ErrorIs(t, err, entities.ErrDependencyUnavailable)
}

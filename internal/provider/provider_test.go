package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	t.Run("DecodesBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"name": "jarvish"}`))
		}))
		defer srv.Close()

		var out struct {
			Name string `json:"name"`
		}

		err := getJSON(context.Background(), srv.Client(), srv.URL, &out)

		require.NoError(t, err)
		assert.Equal(t, "jarvish", out.Name)
	})

	t.Run("NonOKStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		var out map[string]any

		err := getJSON(context.Background(), srv.Client(), srv.URL, &out)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		var out map[string]any

		assert.Error(t, getJSON(context.Background(), srv.Client(), srv.URL, &out))
	})
}

func TestNewHTTPClient(t *testing.T) {
	assert.Equal(t, 5*time.Second, newHTTPClient(5*time.Second).Timeout)

	// Zero falls back to the default so a missing config value never means
	// an unbounded request.
	assert.Equal(t, 10*time.Second, newHTTPClient(0).Timeout)
}

func TestKeyedProvidersRequireKey(t *testing.T) {
	ctx := context.Background()

	_, err := NewOpenWeatherMap("", 0).Current(ctx, "london")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewNewsAPI("", 0).TopHeadlines(ctx, "general", 3)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewYouTube("", 0).Search(ctx, "shape of you", 3)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewGemini("", 0).Reply(ctx, "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

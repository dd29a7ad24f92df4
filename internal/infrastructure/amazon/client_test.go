package amazon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wraplens/backend/internal/domain"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:           baseURL,
		UserAgent:         "test-agent",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000, // don't slow the tests down
	})
}

func TestFetchProductPage(t *testing.T) {
	t.Run("returns page body on success", func(t *testing.T) {
		var gotUA, gotAccept string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			w.Write([]byte("<html>product</html>"))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		html, err := client.FetchProductPage(context.Background(), server.URL+"/dp/B08XYZ1234")

		require.NoError(t, err)
		assert.Equal(t, "<html>product</html>", html)
		assert.Equal(t, "test-agent", gotUA)
		assert.Contains(t, gotAccept, "text/html")
	})

	t.Run("non-2xx fails with status code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.FetchProductPage(context.Background(), server.URL+"/dp/B08XYZ1234")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPageFetchFailed)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("single shot, no retries", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.FetchProductPage(context.Background(), server.URL+"/dp/B08XYZ1234")

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("network failure wraps ErrPageFetchFailed", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:1")
		_, err := client.FetchProductPage(context.Background(), "http://127.0.0.1:1/dp/B08XYZ1234")

		assert.ErrorIs(t, err, domain.ErrPageFetchFailed)
	})
}

func TestProductURL(t *testing.T) {
	client := newTestClient("https://www.amazon.com/")
	assert.Equal(t, "https://www.amazon.com/dp/B08XYZ1234", client.ProductURL("B08XYZ1234"))
}

func TestIsBlockPage(t *testing.T) {
	t.Run("detects known phrases case-insensitively", func(t *testing.T) {
		assert.True(t, IsBlockPage("<p>Sorry! Continue Shopping</p>"))
		assert.True(t, IsBlockPage("<p>Enter the characters you see below</p>"))
	})

	t.Run("product content is not a block page", func(t *testing.T) {
		assert.False(t, IsBlockPage("<span id=\"productTitle\">Gift Wrap</span>"))
	})
}

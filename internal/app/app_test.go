package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// Optional sinks that cannot be reached must not keep the run from
// writing its document.
func TestRunWritesDocumentWhenSinksAreDown(t *testing.T) {
	pixelfedSrv := httptest.NewServer(http.NotFoundHandler())
	defer pixelfedSrv.Close()
	telegramSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":false,"error_code":401,"description":"Unauthorized"}`)
	}))
	defer telegramSrv.Close()

	output := filepath.Join(t.TempDir(), "pixelfed_images.json")
	t.Setenv("APP_ENV", "test")
	t.Setenv("PIXELFED_INSTANCE", pixelfedSrv.URL)
	t.Setenv("SCRAPER_OUTPUT_PATH", output)
	t.Setenv("SCRAPER_RATE_LIMIT_DELAY", "0s")
	t.Setenv("SCRAPER_RETRY_DELAY", "0s")
	t.Setenv("POSTGRES_HOST", "127.0.0.1")
	t.Setenv("POSTGRES_PORT", "1")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_USER", "1001")
	t.Setenv("TELEGRAM_API_ENDPOINT", telegramSrv.URL+"/bot%s/%s")

	application := fx.New(Module, fx.NopLogger)
	require.NoError(t, application.Err())

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	require.NoError(t, application.Start(ctx))

	select {
	case signal := <-application.Wait():
		assert.Equal(t, 0, signal.ExitCode)
	case <-ctx.Done():
		t.Fatal("run did not finish")
	}
	require.NoError(t, application.Stop(ctx))

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"method": "none"`)
}

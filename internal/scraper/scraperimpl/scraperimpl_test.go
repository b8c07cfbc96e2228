package scraperimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/pixelfed-scraper/internal/domain"
	"github.com/orgball2608/pixelfed-scraper/internal/output"
	"github.com/orgball2608/pixelfed-scraper/internal/pixelfed/pixelfedimpl"
	mock_run "github.com/orgball2608/pixelfed-scraper/internal/repositories/run/mocks"
	mock_telegram "github.com/orgball2608/pixelfed-scraper/internal/telegram/mocks"
	"github.com/orgball2608/pixelfed-scraper/pkg/config"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:media="http://search.yahoo.com/mrss/">
  <title>abusayed</title>
  <entry>
    <id>https://pixelfed.social/p/abusayed/700</id>
    <title>Morning</title>
    <updated>2026-05-01T08:00:00+00:00</updated>
    <content type="html">&lt;p&gt;Morning light #sky&lt;/p&gt;</content>
    <link rel="alternate" href="https://pixelfed.social/p/abusayed/700"/>
    <media:content url="https://pixelfed.social/storage/m/700.jpg" type="image/jpeg" medium="image"/>
  </entry>
  <entry>
    <id>https://pixelfed.social/p/abusayed/699</id>
    <title>Words only</title>
    <updated>2026-04-30T08:00:00+00:00</updated>
    <content type="html">&lt;p&gt;No picture today #rest&lt;/p&gt;</content>
    <link rel="alternate" href="https://pixelfed.social/p/abusayed/699"/>
  </entry>
</feed>`

type fixture struct {
	cfg      *config.Config
	telegram *mock_telegram.MockClient
	runs     *mock_run.MockRepository
	scraper  *ScraperImpl
}

func newFixture(t *testing.T, handler http.Handler, token, outputPath string) *fixture {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Pixelfed.Instance = srv.URL
	cfg.Pixelfed.Username = "abusayed"
	cfg.Pixelfed.AccessToken = token
	cfg.Scraper.OutputPath = outputPath
	cfg.Scraper.BatchSize = 40
	cfg.Scraper.MaxAttempts = 3
	cfg.Scraper.APITimeout = 5 * time.Second
	cfg.Scraper.FeedTimeout = 5 * time.Second

	ctrl := gomock.NewController(t)
	f := &fixture{
		cfg:      cfg,
		telegram: mock_telegram.NewMockClient(ctrl),
		runs:     mock_run.NewMockRepository(ctrl),
	}
	f.scraper = New(Opts{
		Pixelfed: pixelfedimpl.New(pixelfedimpl.Opts{Config: cfg, Logger: logger.Nop()}),
		Telegram: f.telegram,
		RunRepo:  f.runs,
		Output:   output.New(cfg),
		Logger:   logger.Nop(),
		Config:   cfg,
	})
	return f
}

func (f *fixture) expectFinish(check func(domain.Run)) {
	f.runs.EXPECT().GetLatestByUsername(gomock.Any(), "abusayed", 1).Return(nil, nil)
	f.runs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, run domain.Run) error {
		check(run)
		return nil
	})
	f.telegram.EXPECT().SendMessageToDefaultChannel(gomock.Any()).Return(nil)
}

func readDocument(t *testing.T, path string) domain.Document {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc domain.Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func statusesJSON(from, n int) string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := from - i
		items = append(items, fmt.Sprintf(
			`{"id":"%d","url":"https://pixelfed.social/p/abusayed/%d","content":"<p>post %d</p>","visibility":"public",`+
				`"media_attachments":[{"id":"m%d","type":"image","url":"https://pixelfed.social/storage/m/%d.jpg"}]}`,
			id, id, id, id, id))
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestRunFallsBackToFeed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/abusayed.atom", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feedXML)
	})
	mux.HandleFunc("/abusayed", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected API call %s", r.URL.Path)
	})

	path := filepath.Join(t.TempDir(), "out", "pixelfed_images.json")
	f := newFixture(t, mux, "", path)
	f.expectFinish(func(run domain.Run) {
		assert.Equal(t, "atom_feed", run.Method)
		assert.False(t, run.Failed())
	})

	run, err := f.scraper.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, run.TotalPosts)
	assert.Equal(t, 1, run.TotalImages)

	doc := readDocument(t, path)
	assert.Equal(t, "atom_feed", doc.Metadata.Method)
	assert.Equal(t, 1, doc.Metadata.TotalPosts)
	assert.Equal(t, 1, doc.Metadata.TotalImages)
	assert.Equal(t, "2.0.0", doc.Metadata.Version)
	assert.Nil(t, doc.Metadata.AccountID)
	assert.Equal(t, f.cfg.Pixelfed.Instance+"/abusayed", doc.Metadata.ProfileURL)
	require.Len(t, doc.Images, 1)
	assert.Equal(t, "https://pixelfed.social/storage/m/700.jpg", doc.Images[0].URL)
	assert.Equal(t, "700", *doc.Images[0].PostID)
	assert.Equal(t, []string{"sky"}, doc.Images[0].Tags)
}

func TestRunPaginatesAuthenticatedAPI(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/accounts/lookup", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"id":"42","username":"abusayed"}`)
	})
	mux.HandleFunc("/api/v1/accounts/42/statuses", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("max_id") {
		case "":
			fmt.Fprint(w, statusesJSON(1000, 40))
		case "961":
			fmt.Fprint(w, statusesJSON(960, 40))
		case "921":
			fmt.Fprint(w, statusesJSON(920, 12))
		default:
			t.Errorf("unexpected cursor %s", r.URL.RawQuery)
		}
	})
	for _, p := range []string{"/users/abusayed.atom", "/abusayed"} {
		mux.HandleFunc(p, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected fallback call %s", r.URL.Path)
		})
	}

	path := filepath.Join(t.TempDir(), "pixelfed_images.json")
	f := newFixture(t, mux, "secret", path)
	f.expectFinish(func(run domain.Run) {
		assert.Equal(t, "42", run.AccountID)
		assert.Equal(t, 92, run.TotalImages)
	})

	run, err := f.scraper.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "api", run.Method)

	doc := readDocument(t, path)
	assert.Equal(t, 92, doc.Metadata.TotalPosts)
	assert.Equal(t, 92, doc.Metadata.TotalImages)
	require.NotNil(t, doc.Metadata.AccountID)
	assert.Equal(t, "42", *doc.Metadata.AccountID)
	assert.Equal(t, "post 1000", *doc.Images[0].PostContent)
}

func TestRunWithNothingFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixelfed_images.json")
	f := newFixture(t, http.NotFoundHandler(), "", path)
	f.expectFinish(func(run domain.Run) {
		assert.Equal(t, domain.MethodNone, run.Method)
	})

	run, err := f.scraper.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, run.TotalImages)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"images": []`)
	assert.Contains(t, string(raw), `"account_id": null`)

	doc := readDocument(t, path)
	assert.Equal(t, "none", doc.Metadata.Method)
	assert.Zero(t, doc.Metadata.TotalPosts)
}

func TestRunReportsWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	f := newFixture(t, http.NotFoundHandler(), "", filepath.Join(blocker, "out.json"))
	f.expectFinish(func(run domain.Run) {
		assert.True(t, run.Failed())
	})

	run, err := f.scraper.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, run.Error, "failed to write output")
}

func TestFinishToleratesHistoryFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixelfed_images.json")
	f := newFixture(t, http.NotFoundHandler(), "", path)
	f.runs.EXPECT().GetLatestByUsername(gomock.Any(), "abusayed", 1).Return(nil, fmt.Errorf("db down"))
	f.runs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("db down"))
	f.telegram.EXPECT().SendMessageToDefaultChannel(gomock.Any()).Return(fmt.Errorf("telegram down"))

	_, err := f.scraper.Run(context.Background())
	assert.NoError(t, err)
}

func TestScheduleRequiresExpression(t *testing.T) {
	f := newFixture(t, http.NotFoundHandler(), "", filepath.Join(t.TempDir(), "out.json"))
	assert.ErrorIs(t, f.scraper.Schedule(context.Background()), ErrNoSchedule)
}

func TestScheduleRejectsBadExpression(t *testing.T) {
	f := newFixture(t, http.NotFoundHandler(), "", filepath.Join(t.TempDir(), "out.json"))
	f.cfg.Scraper.Schedule = "every now and then"
	assert.Error(t, f.scraper.Schedule(context.Background()))
}

func TestScheduleRegistersJobs(t *testing.T) {
	f := newFixture(t, http.NotFoundHandler(), "", filepath.Join(t.TempDir(), "out.json"))
	f.cfg.Scraper.Schedule = "0 */6 * * *"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, f.scraper.Schedule(ctx))
	assert.Len(t, f.scraper.Scheduler.Jobs(), 2)
}

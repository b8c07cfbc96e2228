package pixelfedimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/orgball2608/pixelfed-scraper/internal/pixelfed"
	"github.com/orgball2608/pixelfed-scraper/internal/ratelimit"
	"github.com/orgball2608/pixelfed-scraper/pkg/config"
	apperrors "github.com/orgball2608/pixelfed-scraper/pkg/errors"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
	"github.com/orgball2608/pixelfed-scraper/pkg/retry"
	"go.uber.org/fx"
)

const (
	acceptJSON = "application/json"
	acceptAtom = "application/atom+xml"
	acceptHTML = "text/html"

	defaultBatchSize = 40
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type PixelfedImpl struct {
	http   *resty.Client
	config *config.Config
	logger logger.Logger
	pacer  ratelimit.Limiter
	retry  retry.Config
}

func New(opts Opts) *PixelfedImpl {
	log := opts.Logger.WithComponent("PixelfedClient")
	client := resty.New().
		SetBaseURL(opts.Config.Pixelfed.Instance).
		SetHeader("User-Agent", opts.Config.Scraper.UserAgent).
		SetLogger(restyLogger{log})

	return &PixelfedImpl{
		http:   client,
		config: opts.Config,
		logger: log,
		pacer:  ratelimit.NewPacer(opts.Config.Scraper.RateLimitDelay),
		retry: retry.Config{
			MaxAttempts: opts.Config.Scraper.MaxAttempts,
			Delay:       opts.Config.Scraper.RetryDelay,
		},
	}
}

var _ pixelfed.Client = (*PixelfedImpl)(nil)

func (p *PixelfedImpl) HasToken() bool {
	return p.config.HasToken()
}

func (p *PixelfedImpl) BatchSize() int {
	if p.config.Scraper.BatchSize <= 0 {
		return defaultBatchSize
	}
	return p.config.Scraper.BatchSize
}

type request struct {
	name    string
	path    string
	params  map[string]string
	accept  string
	auth    bool
	timeout time.Duration
}

// fetch runs req under the retry policy and returns the raw body, which is
// empty when the server had nothing to say.
func (p *PixelfedImpl) fetch(ctx context.Context, req request) ([]byte, error) {
	var body []byte
	err := retry.Do(ctx, p.logger, req.name, func() error {
		b, err := p.get(ctx, req)
		if err != nil {
			return err
		}
		body = b
		return nil
	}, p.retry)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(body), nil
}

// fetchJSON decodes the body into out. It reports false for an empty body.
func (p *PixelfedImpl) fetchJSON(ctx context.Context, req request, out any) (bool, error) {
	req.accept = acceptJSON
	req.timeout = p.config.Scraper.APITimeout

	var found bool
	err := retry.Do(ctx, p.logger, req.name, func() error {
		body, err := p.get(ctx, req)
		if err != nil {
			return err
		}
		body = bytes.TrimSpace(body)
		if len(body) == 0 {
			found = false
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode %s: %w: %v", req.path, apperrors.ErrMalformed, err)
		}
		found = true
		return nil
	}, p.retry)
	return found, err
}

func (p *PixelfedImpl) get(ctx context.Context, req request) ([]byte, error) {
	if err := p.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	timeout := req.timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r := p.http.R().
		SetContext(reqCtx).
		SetHeader("Accept", req.accept).
		SetQueryParams(req.params)
	if req.auth && p.config.HasToken() {
		r.SetAuthToken(p.config.Pixelfed.AccessToken)
	}

	resp, err := r.Get(req.path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", req.path, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusTooManyRequests:
		wait := retryAfter(resp.Header().Get("Retry-After"), p.config.Scraper.RetryDelay)
		p.logger.Warn("Rate limited", "path", req.path, "wait", wait.String())
		return nil, retry.After(fmt.Errorf("GET %s: %w", req.path, apperrors.FromStatus(code)), wait)
	case !resp.IsSuccess():
		return nil, fmt.Errorf("GET %s: %w", req.path, apperrors.FromStatus(code))
	}
	return resp.Body(), nil
}

// retryAfter reads a Retry-After header given either in seconds or as an
// HTTP date.
func retryAfter(header string, fallback time.Duration) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(header); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
		return 0
	}
	return fallback
}

type restyLogger struct {
	log logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.log.Error(fmt.Sprintf(format, v...)) }
func (l restyLogger) Warnf(format string, v ...any)  { l.log.Warn(fmt.Sprintf(format, v...)) }
func (l restyLogger) Debugf(format string, v ...any) { l.log.Debug(fmt.Sprintf(format, v...)) }

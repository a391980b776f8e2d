package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"vitae/internal/cache"
	"vitae/internal/model"
	"vitae/internal/util"
)

const fetchAttempts = 3

// fetchSleepFunc is replaced in tests to avoid real backoff delays
var fetchSleepFunc = time.Sleep

// Fetcher retrieves the source page, consulting the cache, robots.txt, and
// the per-host rate limit before touching the network.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
	limiter    *Limiter
	pages      cache.Cache // nil disables caching
	log        zerolog.Logger
}

// NewFetcher creates a fetcher from the HTTP config. pages may be nil.
func NewFetcher(cfg model.HTTPConfig, pages cache.Cache, log zerolog.Logger) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		limiter:   NewLimiter(cfg.RatePerSecond, cfg.RateBurst),
		pages:     pages,
		log:       log,
	}
	if cfg.RespectRobots {
		f.robots = util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}
	return f
}

// FetchResult contains the fetched page and metadata
type FetchResult struct {
	HTML      string          `json:"html"`
	Meta      model.FetchMeta `json:"meta"`
	Subject   string          `json:"subject"`
	FinalURL  string          `json:"final_url"`
	FromCache bool            `json:"-"`
}

// Fetch retrieves the page at rawURL, from cache when possible
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	key := cache.Key(rawURL)
	if f.pages != nil {
		if data, found := f.pages.Get(key); found {
			var result FetchResult
			if err := json.Unmarshal(data, &result); err == nil {
				result.FromCache = true
				f.log.Debug().Str("url", rawURL).Msg("cache hit")
				return &result, nil
			}
		}
	}

	if f.robots != nil {
		allowed, err := f.robots.Allowed(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
		}
	}

	result, err := f.fetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if f.pages != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := f.pages.Set(key, data, 0); err != nil {
				f.log.Warn().Err(err).Msg("cache store failed")
			}
		}
	}

	return result, nil
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, rawURL string) (*FetchResult, error) {
	var lastErr error
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}

		result, retryable, err := f.fetchOnce(ctx, rawURL)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !retryable || attempt == fetchAttempts {
			break
		}

		backoff := time.Duration(attempt) * 500 * time.Millisecond
		f.log.Debug().Err(err).Int("attempt", attempt).Dur("backoff", backoff).Msg("retrying fetch")
		fetchSleepFunc(backoff)
	}
	return nil, lastErr
}

// fetchOnce performs a single HTTP GET. The bool reports whether the
// failure is worth retrying (network errors, 429, 5xx).
func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) (*FetchResult, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, true, fmt.Errorf("read body: %w", err)
	}

	finalURL := resp.Request.URL.String()
	return &FetchResult{
		HTML: string(body),
		Meta: model.FetchMeta{
			StatusCode:   resp.StatusCode,
			ContentType:  resp.Header.Get("Content-Type"),
			LastModified: resp.Header.Get("Last-Modified"),
			ETag:         resp.Header.Get("ETag"),
		},
		Subject:  subjectFromURL(finalURL),
		FinalURL: finalURL,
	}, false, nil
}

// subjectFromURL derives a human-readable subject from the page URL
func subjectFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return parsed.Host
	}

	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]
	last = strings.ReplaceAll(last, "_", " ")

	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}
	return last
}

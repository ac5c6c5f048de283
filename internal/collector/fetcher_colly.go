package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// CollyFetcher implements the PageFetcher interface using the Colly
// collector. The base collector plays the role of the shared HTTP session:
// it is built once per run and cloned for each page request.
type CollyFetcher struct {
	baseCollector *colly.Collector
	searchURL     string
	logger        *zap.Logger
}

// NewCollyFetcher constructs a configured Colly-based PageFetcher.
// Construction failure is the run's fatal configuration error: it happens
// before any page is requested or any output is written.
func NewCollyFetcher(cfg Config, logger *zap.Logger) (*CollyFetcher, error) {
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be > 0, got %v", cfg.RequestTimeout)
	}
	base := colly.NewCollector(
		colly.Async(true),
		colly.UserAgent(cfg.UserAgent),
	)
	base.AllowURLRevisit = true
	base.IgnoreRobotsTxt = true
	base.WithTransport(&http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          16,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.RequestTimeout,
		ForceAttemptHTTP2:     true,
	})
	base.SetRequestTimeout(cfg.RequestTimeout)

	return &CollyFetcher{
		baseCollector: base,
		searchURL:     SearchURL,
		logger:        logger,
	}, nil
}

// FetchPage retrieves and decodes one search page for a store.
func (f *CollyFetcher) FetchPage(ctx context.Context, store Store, page int, query string) (SearchPage, error) {
	target := searchPageURL(f.searchURL, store, page, query)
	f.logger.Debug("GET search page",
		zap.String("store", store.Slug),
		zap.Int("page", page),
		zap.String("url", target),
	)

	collector := f.baseCollector.Clone()
	resultCh := make(chan fetchResult, 1)
	var once sync.Once
	send := func(res fetchResult) {
		once.Do(func() {
			resultCh <- res
		})
	}

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "application/json")
		r.Headers.Set("Accept-Language", "fr-CA,fr;q=0.9,en;q=0.8")
		r.Headers.Set("Referer", BaseURL+"/")
	})

	collector.OnResponse(func(r *colly.Response) {
		var decoded SearchPage
		if err := json.Unmarshal(r.Body, &decoded); err != nil {
			send(fetchResult{err: &ParseError{URL: target, Err: err}})
			return
		}
		send(fetchResult{page: decoded})
	})

	collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			send(fetchResult{err: &StatusError{Code: r.StatusCode, URL: target}})
			return
		}
		if err == nil {
			err = errors.New("unknown colly error")
		}
		send(fetchResult{err: err})
	})

	if err := collector.Visit(target); err != nil {
		return SearchPage{}, fmt.Errorf("visit %s: %w", target, err)
	}
	collector.Wait()

	select {
	case res := <-resultCh:
		if err := ctx.Err(); err != nil {
			return SearchPage{}, err
		}
		return res.page, res.err
	default:
		return SearchPage{}, errors.New("fetch produced no result")
	}
}

type fetchResult struct {
	page SearchPage
	err  error
}

// searchPageURL builds the query string for one (store, page, query) request.
func searchPageURL(base string, store Store, page int, query string) string {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(PageSize))
	params.Set("storeId", store.StoreID)
	params.Set("sort", "relevance")
	params.Set("enableStoreSelection", "true")
	return base + "?" + params.Encode()
}

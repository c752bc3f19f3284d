package quotes

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quotes-lake/core/metrics"
	"quotes-lake/feature/quotes/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const unknownAuthor = "Unknown"

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.0.0",
}

// Page is one scraped listing page.
type Page struct {
	Number int
	URL    string
	Quotes []models.RawQuote
}

// Scraper extracts raw quotes from the paginated quotes site.
type Scraper struct {
	cfg       Config
	baseURL   *url.URL
	client    *http.Client
	userAgent string
	logger    *zap.Logger
	sleep     func(context.Context, time.Duration) error
}

// NewScraper creates a scraper with a browser-like session.
func NewScraper(cfg Config, logger *zap.Logger) (*Scraper, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", cfg.BaseURL)
	}
	if cfg.FetchAttempts < 1 {
		cfg.FetchAttempts = 1
	}

	return &Scraper{
		cfg:       cfg,
		baseURL:   base,
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: userAgents[rand.IntN(len(userAgents))],
		logger:    logger,
		sleep:     sleepContext,
	}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Scraper) newBackOff(ctx context.Context) backoff.BackOffContext {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = s.cfg.RetryMin
	expo.MaxInterval = s.cfg.RetryMax
	expo.Multiplier = 2
	expo.RandomizationFactor = 0
	expo.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(expo, uint64(s.cfg.FetchAttempts-1)), ctx)
}

// fetch downloads and parses a page, retrying transient failures.
// Client errors other than 429 are not retried.
func (s *Scraper) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	var doc *goquery.Document

	op := func() error {
		s.logger.Info("Fetching page", zap.String("url", pageURL))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", s.userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.5")
		req.Header.Set("Connection", "keep-alive")

		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			statusErr := fmt.Errorf("unexpected status %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return backoff.Permanent(statusErr)
			}
			return statusErr
		}

		d, err := goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return err
		}
		doc = d
		return nil
	}

	notify := func(err error, wait time.Duration) {
		s.logger.Warn("Fetch failed, retrying",
			zap.String("url", pageURL),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	if err := backoff.RetryNotify(op, s.newBackOff(ctx), notify); err != nil {
		metrics.RecordPageFetch(false)
		return nil, fmt.Errorf("fetch failed for %s: %w", pageURL, err)
	}
	metrics.RecordPageFetch(true)

	if err := s.sleep(ctx, s.cfg.Delay); err != nil {
		return nil, err
	}
	return doc, nil
}

// parseQuote maps a div.quote element to a raw quote.
func (s *Scraper) parseQuote(sel *goquery.Selection) models.RawQuote {
	text := cleanText(sel.Find("span.text").First().Text())

	author := unknownAuthor
	if a := sel.Find("small.author").First(); a.Length() > 0 {
		author = strings.TrimSpace(a.Text())
	}

	authorURL := ""
	if href, ok := sel.Find("a[href]").First().Attr("href"); ok && strings.Contains(href, "/author/") {
		authorURL = s.resolve(href)
	}

	tags := []string{}
	sel.Find("div.tags a.tag").Each(func(_ int, tag *goquery.Selection) {
		tags = append(tags, strings.TrimSpace(tag.Text()))
	})

	return models.NewRawQuote(text, author, authorURL, tags)
}

// cleanText trims whitespace and the decorative quotation marks around a quote.
func cleanText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "\"“”")
	return strings.TrimSpace(text)
}

func (s *Scraper) resolve(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return s.baseURL.ResolveReference(ref).String()
}

func (s *Scraper) nextPage(doc *goquery.Document) string {
	href, ok := doc.Find("li.next a[href]").First().Attr("href")
	if !ok {
		return ""
	}
	return s.resolve(href)
}

// Pages crawls the site from the base URL, following the next link until there
// is none or maxPages pages were read. maxPages <= 0 uses the configured limit.
// A failed fetch is yielded with its error and ends the crawl.
func (s *Scraper) Pages(ctx context.Context, maxPages int) iter.Seq2[Page, error] {
	if maxPages <= 0 {
		maxPages = s.cfg.MaxPages
	}

	return func(yield func(Page, error) bool) {
		pageURL := s.baseURL.String()
		for n := 1; pageURL != "" && n <= maxPages; n++ {
			s.logger.Info("Scraping page", zap.Int("page", n))

			doc, err := s.fetch(ctx, pageURL)
			if err != nil {
				yield(Page{Number: n, URL: pageURL}, err)
				return
			}

			page := Page{Number: n, URL: pageURL, Quotes: []models.RawQuote{}}
			doc.Find("div.quote").Each(func(_ int, sel *goquery.Selection) {
				q := s.parseQuote(sel)
				q.PageURL = pageURL
				page.Quotes = append(page.Quotes, q)
			})
			metrics.QuotesScraped.Add(float64(len(page.Quotes)))

			if !yield(page, nil) {
				return
			}
			pageURL = s.nextPage(doc)
		}
	}
}

// Quotes yields every quote of the crawl in page order.
func (s *Scraper) Quotes(ctx context.Context, maxPages int) iter.Seq2[models.RawQuote, error] {
	return func(yield func(models.RawQuote, error) bool) {
		for page, err := range s.Pages(ctx, maxPages) {
			if err != nil {
				yield(models.RawQuote{}, err)
				return
			}
			for _, q := range page.Quotes {
				if !yield(q, nil) {
					return
				}
			}
		}
	}
}

// ScrapeResult is the outcome of a full crawl.
type ScrapeResult struct {
	Pages  int
	Quotes []models.RawQuote
	// Err is the fetch error that ended the crawl early, if any.
	Err error
}

// Scrape collects a whole crawl. A fetch failure after at least one page keeps
// what was collected and is reported in Err; a failure on the first page is returned.
func (s *Scraper) Scrape(ctx context.Context, maxPages int) (*ScrapeResult, error) {
	result := &ScrapeResult{Quotes: []models.RawQuote{}}
	for page, err := range s.Pages(ctx, maxPages) {
		if err != nil {
			if result.Pages == 0 || errors.Is(err, context.Canceled) {
				return nil, err
			}
			s.logger.Warn("Crawl stopped early", zap.Int("pages", result.Pages), zap.Error(err))
			result.Err = err
			break
		}
		result.Pages++
		result.Quotes = append(result.Quotes, page.Quotes...)
	}
	return result, nil
}

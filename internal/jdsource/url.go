package jdsource

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

var ErrInvalidURL = errors.New("invalid job description url")

const defaultFetchTimeout = 20 * time.Second

type Options struct {
	// Selector picks the element holding the posting. Defaults to body.
	Selector  string
	Timeout   time.Duration
	UserAgent string
	// Headless enables the browser fallback for pages that render client side.
	Headless bool
	Logger   *log.Logger
}

// URLFetcher downloads a posting page and returns its visible text.
type URLFetcher struct {
	selector  string
	timeout   time.Duration
	userAgent string
	headless  *HeadlessFetcher
	logger    *log.Logger
}

func NewURLFetcher(opts Options) *URLFetcher {
	if strings.TrimSpace(opts.Selector) == "" {
		opts.Selector = "body"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultFetchTimeout
	}
	if strings.TrimSpace(opts.UserAgent) == "" {
		opts.UserAgent = "CareerMatch/1.0"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	f := &URLFetcher{
		selector:  opts.Selector,
		timeout:   opts.Timeout,
		userAgent: opts.UserAgent,
		logger:    opts.Logger,
	}
	if opts.Headless {
		f.headless = NewHeadlessFetcher(opts.Timeout)
	}
	return f
}

func (f *URLFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	target, err := validateURL(rawURL)
	if err != nil {
		return "", err
	}

	text, err := f.fetchStatic(ctx, target)
	if err == nil && text != "" {
		return text, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if f.headless == nil {
		if err != nil {
			return "", err
		}
		return "", ErrEmptyDocument
	}

	f.logger.Printf("jdsource=url status=fallback_headless url=%s static_err=%v", target, err)
	return f.headless.Fetch(ctx, target)
}

func (f *URLFetcher) fetchStatic(ctx context.Context, target string) (string, error) {
	c := colly.NewCollector(colly.UserAgent(f.userAgent))
	if host := hostFromURL(target); host != "" {
		c.AllowedDomains = []string{host}
	}
	c.SetRequestTimeout(f.timeout)

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
			return
		}
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
	})

	var (
		text   string
		reqErr error
	)
	c.OnHTML(f.selector, func(e *colly.HTMLElement) {
		if text != "" {
			return
		}
		e.DOM.Find("script, style, noscript, svg").Remove()
		text = NormalizeText(e.DOM.Text())
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode > 0 {
			reqErr = fmt.Errorf("fetch %s: status %d: %w", target, r.StatusCode, err)
			return
		}
		reqErr = fmt.Errorf("fetch %s: %w", target, err)
	})

	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err := c.Visit(target); err != nil {
		return "", fmt.Errorf("fetch %s: %w", target, err)
	}
	c.Wait()
	if reqErr != nil {
		return "", reqErr
	}
	return text, nil
}

func validateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	return u.String(), nil
}

func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(u.Host); err == nil {
		return h
	}
	return u.Host
}

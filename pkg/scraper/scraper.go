package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/patrickmn/go-cache"
)

const (
	userAgent    = "Mozilla/5.0 (Chatbot/1.0)"
	fallbackName = "Afaq Tours Dubai"

	summaryCacheKey = "site_summary"
)

// SiteSummarizer produces the plain-text context extracted from the company
// website. Neither method ever fails: scrape problems degrade into a
// descriptive placeholder string.
type SiteSummarizer interface {
	// Summary returns the cached summary, scraping when the cache is cold.
	Summary(ctx context.Context) string
	// Fetch always scrapes, bypassing the cache.
	Fetch(ctx context.Context) string
}

type WebsiteScraper struct {
	siteURL string
	client  *http.Client
	cache   *cache.Cache
}

var _ SiteSummarizer = &WebsiteScraper{}

func NewWebsiteScraper(siteURL string, timeout, cacheTTL time.Duration) *WebsiteScraper {
	return &WebsiteScraper{
		siteURL: siteURL,
		client:  &http.Client{Timeout: timeout},
		cache:   cache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *WebsiteScraper) Summary(ctx context.Context) string {
	if cached, ok := s.cache.Get(summaryCacheKey); ok {
		return cached.(string)
	}
	content, err := s.scrape(ctx)
	if err != nil {
		// Failures are never cached so the next turn retries the fetch.
		return placeholder(err)
	}
	s.cache.SetDefault(summaryCacheKey, content)
	return content
}

func (s *WebsiteScraper) Fetch(ctx context.Context) string {
	content, err := s.scrape(ctx)
	if err != nil {
		return placeholder(err)
	}
	return content
}

func placeholder(err error) string {
	return fmt.Sprintf("Website content not available. Error: %v", err)
}

func (s *WebsiteScraper) scrape(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.siteURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// Boilerplate subtrees carry no useful tour content.
	doc.Find("script, style, noscript, footer, form, nav, header").Remove()

	var blocks []string

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = fallbackName
	}
	blocks = append(blocks, "Website Title: "+title)

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && desc != "" {
		blocks = append(blocks, "Meta Description: "+desc)
	}

	doc.Find("h1, h2, h3, p, li").Each(func(_ int, sel *goquery.Selection) {
		text := normalize(sel.Text())
		if len(strings.Fields(text)) > 3 {
			blocks = append(blocks, text)
		}
	})

	base, _ := url.Parse(s.siteURL)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		text := normalize(sel.Text())
		href, _ := sel.Attr("href")
		abs := resolveURL(base, href)
		if text != "" && strings.Contains(abs, "http") {
			blocks = append(blocks, text+": "+abs)
		}
	})

	return strings.Join(blocks, "\n"), nil
}

// normalize collapses runs of whitespace the way rendered text would read.
func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultFetchTimeout is the default HTTP request timeout for CV URLs.
const DefaultFetchTimeout = 30 * time.Second

// defaultUserAgent is the user agent string for HTTP requests.
const defaultUserAgent = "Mozilla/5.0 (compatible; SkillGapAnalyst/1.0)"

// FetchError represents an error during CV URL fetching.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// IngestFromURL retrieves a CV from a URL and returns cleaned plain text.
// HTML responses are reduced to their main body text; anything else is
// treated as plain text.
func IngestFromURL(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", &FetchError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: DefaultFetchTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		text, err = ExtractMainText(text)
		if err != nil {
			return "", &FetchError{URL: urlStr, Message: "failed to extract text from HTML", Cause: err}
		}
	}

	return CleanText(text), nil
}

// ExtractMainText parses HTML and returns the main body text with noise
// elements removed.
func ExtractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner, .popup").Remove()

	var mainContent *goquery.Selection
	for _, selector := range []string{"main", "article", ".content", "#content", ".resume", ".cv"} {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	// goquery flattens block elements without separators; walk text nodes so
	// section headers keep their own lines.
	var sb strings.Builder
	mainContent.Find("*").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() == 0 {
			if t := strings.TrimSpace(s.Text()); t != "" {
				sb.WriteString(t)
				sb.WriteString("\n")
			}
		}
	})
	if sb.Len() == 0 {
		return strings.TrimSpace(mainContent.Text()), nil
	}

	return strings.TrimSpace(sb.String()), nil
}

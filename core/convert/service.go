// ABOUTME: Page conversion service: fetch, optional readability cleanup, HTML to Markdown
// ABOUTME: Extraction failures fall back to full-page conversion, never to an error

package convert

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"markdown-collector-api/core/domain"
	coreerrors "markdown-collector-api/core/errors"
	"markdown-collector-api/core/interfaces"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Service implements the PageConverter interface.
type Service struct {
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewService creates a new page conversion service.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		httpClient: deps.HTTPClient,
		logger:     deps.Logger,
	}
}

// Convert fetches the tab's page and converts it to Markdown.
func (s *Service) Convert(ctx context.Context, tab domain.Tab, opts interfaces.ConvertOptions) (string, error) {
	if tab.URL == "" {
		return "", &coreerrors.ConversionError{URL: tab.URL, Message: "tab has no url"}
	}

	html, err := s.fetchPage(ctx, tab.URL)
	if err != nil {
		return "", &coreerrors.ConversionError{URL: tab.URL, Message: err.Error()}
	}

	return s.ConvertHTML(html, tab, opts), nil
}

// ConvertHTML converts already-fetched HTML to Markdown. Exposed
// separately so conversion stays testable without network access.
func (s *Service) ConvertHTML(html string, tab domain.Tab, opts interfaces.ConvertOptions) string {
	if opts.UseExtraction {
		if markdown, ok := s.convertWithCleanup(html, tab); ok {
			return markdown
		}
		s.logger.Warn("Readability failed to parse the page, falling back to full page conversion", map[string]interface{}{
			"url": tab.URL,
		})
	}
	return s.convertFullPage(html, tab)
}

func (s *Service) fetchPage(ctx context.Context, pageURL string) (string, error) {
	resp, err := s.httpClient.Get(ctx, pageURL)
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// convertWithCleanup runs readability extraction first. Returns false when
// no extractable article content was found.
func (s *Service) convertWithCleanup(html string, tab domain.Tab) (string, bool) {
	pageURL, err := url.Parse(tab.URL)
	if err != nil {
		return "", false
	}

	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err != nil || article.Content == "" {
		return "", false
	}

	markdown, err := s.htmlToMarkdown(article.Content)
	if err != nil {
		return "", false
	}

	title := article.Title
	if title == "" {
		title = tab.Title
	}
	return buildDocument(title, markdown), true
}

// convertFullPage converts the whole body without extraction. It must
// tolerate malformed or empty HTML: the worst case is a document that is
// just the title heading.
func (s *Service) convertFullPage(html string, tab domain.Tab) string {
	title := tab.Title
	body := html

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
			title = t
		}
		if b, err := doc.Find("body").First().Html(); err == nil && strings.TrimSpace(b) != "" {
			body = b
		}
	}

	markdown, err := s.htmlToMarkdown(body)
	if err != nil {
		s.logger.Debug("Failed to convert HTML to markdown", map[string]interface{}{
			"url":   tab.URL,
			"error": err.Error(),
		})
		markdown = ""
	}

	return buildDocument(title, markdown)
}

func (s *Service) htmlToMarkdown(html string) (string, error) {
	converter := md.NewConverter("", true, nil)
	return converter.ConvertString(html)
}

// buildDocument prepends the page title as an H1, matching the shape the
// collection and the copy wrapper expect.
func buildDocument(title, content string) string {
	var doc strings.Builder
	if title != "" {
		doc.WriteString("# ")
		doc.WriteString(title)
		doc.WriteString("\n\n")
	}
	doc.WriteString(cleanMarkdown(content))
	return strings.TrimSpace(doc.String())
}

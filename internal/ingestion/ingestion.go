// Package ingestion turns posting pages into catalog opportunities.
package ingestion

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/amina/career-match/internal/fetch"
	"github.com/amina/career-match/internal/types"
)

var (
	// ErrHTTPRequestFailed is returned when the posting page cannot be fetched
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
	// ErrNoContent is returned when the page yields no usable text
	ErrNoContent = fmt.Errorf("no usable content")
)

// IngestURL fetches a posting page and assembles an opportunity from its
// content. If useBrowser is true, pages with too little static content
// are re-fetched through a headless browser.
func IngestURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (*types.Opportunity, error) {
	page, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[INGEST] Fetched %s: %d bytes", urlStr, len(page.HTML))
	}

	html := page.HTML
	text, err := fetch.ExtractPostingText(html)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		if verbose {
			log.Printf("[INGEST] Static content too short (%d chars), rendering in browser", len(text))
		}
		rendered, err := fetch.Rendered(ctx, urlStr, 60*time.Second, verbose)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
		}
		html = rendered
		text, err = fetch.ExtractPostingText(html)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
		}
	}

	return FromContent(html, text, urlStr)
}

// FromContent assembles an opportunity from already-fetched posting HTML
// and extracted text. Exposed separately so file-based and test inputs
// skip the network.
func FromContent(html, text, urlStr string) (*types.Opportunity, error) {
	if text == "" {
		return nil, ErrNoContent
	}

	title, err := fetch.Title(html)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: posting has no title", ErrNoContent)
	}

	opp := &types.Opportunity{
		Title:          title,
		URL:            urlStr,
		Description:    text,
		RequiredSkills: ExtractSkills(text),
	}

	if sector := GuessSector(text); sector != "" {
		opp.Sector = &sector
	}

	return opp, nil
}

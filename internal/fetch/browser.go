// Package fetch - browser.go provides headless browser rendering for
// JavaScript-rendered job boards that serve empty markup to plain HTTP
// clients (MyCareersFuture in particular).
package fetch

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum HTML length for a plain HTTP fetch to be
// considered usable. Shorter pages are likely SPA shells worth re-fetching
// through the browser.
const MinContentLength = 500

// ShouldUseBrowser reports whether the fetched HTML is too thin to contain
// listing content, indicating a client-side rendered page.
func ShouldUseBrowser(html string) bool {
	return len(strings.TrimSpace(html)) < MinContentLength
}

// RenderedHTML loads a page in a headless browser and returns the rendered
// HTML. Requires Chrome/Chromium on the system; callers treat any error as
// "source unreachable" and degrade to zero results.
func RenderedHTML(ctx context.Context, url string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to populate listings.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: url, Message: "browser rendering failed", Cause: err}
	}
	return html, nil
}

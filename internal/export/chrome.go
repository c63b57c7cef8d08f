package export

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/modos-studio/quotepilot-backend/pkg/config"
)

// A4 in inches for PrintToPDF and in CSS pixels at 96dpi for screenshots.
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69

	a4WidthPx  = 794
	a4HeightPx = 1123
)

// chromeRenderer drives a headless chromium over the devtools protocol.
type chromeRenderer struct {
	cfg config.ExportConfig
}

// available reports whether a chromium binary is on PATH.
func (r *chromeRenderer) available() bool {
	for _, name := range []string{"chromium-browser", "chromium", "google-chrome"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// renderPDF prints the HTML to an A4 PDF with backgrounds.
func (r *chromeRenderer) renderPDF(ctx context.Context, html string) ([]byte, error) {
	var data []byte
	err := r.run(ctx, html,
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			data, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthIn).
				WithPaperHeight(a4HeightIn).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome pdf render failed: %w", err)
	}
	return data, nil
}

// renderPNG captures the full page at the configured device scale.
func (r *chromeRenderer) renderPNG(ctx context.Context, html string) ([]byte, error) {
	scale := r.cfg.PNGScale
	if scale <= 0 {
		scale = 1
	}
	var data []byte
	err := r.run(ctx, html,
		chromedp.EmulateViewport(a4WidthPx, a4HeightPx, chromedp.EmulateScale(scale)),
		chromedp.FullScreenshot(&data, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome png render failed: %w", err)
	}
	return data, nil
}

func (r *chromeRenderer) run(ctx context.Context, html string, actions ...chromedp.Action) error {
	if !r.available() {
		return ErrChromeUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.ChromeTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	run := []chromedp.Action{
		chromedp.Navigate(dataURL(html)),
		chromedp.WaitReady("body"),
	}
	run = append(run, actions...)
	return chromedp.Run(taskCtx, run...)
}

// dataURL percent-encodes HTML for a data: navigation. url.QueryEscape is
// wrong here, it encodes spaces as + instead of %20.
func dataURL(html string) string {
	var b strings.Builder
	for _, r := range html {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.', r == '~':
			b.WriteRune(r)
		case r == ' ':
			b.WriteString("%20")
		default:
			for _, by := range []byte(string(r)) {
				fmt.Fprintf(&b, "%%%02X", by)
			}
		}
	}
	return "data:text/html;charset=utf-8," + b.String()
}

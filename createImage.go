// createImage.go
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"strings"

	"github.com/chromedp/chromedp"
)

const jpegQuality = 90

// generateImage rasterizes a chart by loading its SVG in headless Chrome and
// screenshotting the <svg> element. format is "png", "jpg" or "jpeg".
func generateImage(ctx context.Context, chart *Chart, format string, outputWriter io.Writer) error {
	// 1. Generate SVG string first
	svgString, err := GenerateSVG(chart)
	if err != nil {
		return fmt.Errorf("failed to generate intermediate SVG: %w", err)
	}

	// 2. Load it through a data URI so no temp file is needed
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svgString))

	// 3. Setup chromedp
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// 4. Navigate and screenshot the SVG element
	var screenshotBuf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &screenshotBuf, chromedp.ByQuery),
	}

	log.Printf("Rendering day %d through headless Chrome...", chart.DayNumber)
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(screenshotBuf) == 0 {
		return fmt.Errorf("screenshot buffer is empty, screenshot failed")
	}

	// 5. Process output
	return encodeScreenshot(screenshotBuf, format, outputWriter)
}

// encodeScreenshot copies a PNG screenshot as-is or re-encodes it as JPEG.
func encodeScreenshot(pngData []byte, format string, w io.Writer) error {
	switch format {
	case "png":
		if _, err := io.Copy(w, bytes.NewReader(pngData)); err != nil {
			return fmt.Errorf("failed to write PNG screenshot data: %w", err)
		}
	case "jpg", "jpeg":
		img, err := png.Decode(bytes.NewReader(pngData))
		if err != nil {
			return fmt.Errorf("failed to decode PNG screenshot: %w", err)
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("unsupported image format '%s'", format)
	}
	log.Printf("Encoded %s image.", strings.ToUpper(format))
	return nil
}

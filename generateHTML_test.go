package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHTML_Page(t *testing.T) {
	good := scenarioSheet()
	bad := scenarioSheet()
	bad.DayNumber = 2
	bad.Segments = bad.Segments[:3]

	results := RenderAll([]LogSheet{good, bad}, DefaultGridConfig())
	page, err := generateHTML(results, HeaderOptions{Carrier: "Acme & Sons"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Equal(t, 2, strings.Count(page, `<div class="log-card">`))
	assert.Equal(t, 1, strings.Count(page, "<svg"))
	assert.NotContains(t, page, "<?xml")

	assert.Contains(t, page, "<div>Day 1</div>")
	assert.Contains(t, page, `<span class="v">520</span>`)
	assert.Contains(t, page, `<span class="v">4521</span>`, "truck falls back to the default")
	assert.Contains(t, page, "Acme &amp; Sons")

	for _, status := range DutyStatuses {
		assert.Contains(t, page, status.LegendLabel())
	}
	assert.Contains(t, page, "Pre-trip inspection")
	assert.Contains(t, page, "Log sheet rejected: day 2")
}

func TestGenerateHTML_Warnings(t *testing.T) {
	sheet := scenarioSheet()
	sheet.Totals.Driving = 11

	page, err := generateHTML(RenderAll([]LogSheet{sheet}, DefaultGridConfig()), HeaderOptions{})
	require.NoError(t, err)

	assert.Contains(t, page, `class="log-warnings"`)
	assert.Contains(t, page, "DRIVING total is 11.0 but segments add up to 10.5")
	assert.Contains(t, page, defaultCarrier)
}

func TestGenerateHTML_NoResults(t *testing.T) {
	_, err := generateHTML(nil, HeaderOptions{})
	assert.Error(t, err)
}

func TestInlineSVG(t *testing.T) {
	assert.Equal(t, "<svg/>", inlineSVG("<?xml version=\"1.0\"?>\n<svg/>"))
	assert.Equal(t, "<svg/>", inlineSVG("<svg/>"))
}

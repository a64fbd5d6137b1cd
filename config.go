package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// templateEnv names a default template file used when --template is not given.
const templateEnv = "ELDLOG_TEMPLATE"

// loadTemplate reads a YAML (or JSON) chart template. An empty path yields
// the zero Template, i.e. every default.
func loadTemplate(path string) (Template, error) {
	if path == "" {
		return Template{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("error reading template file: %w", err)
	}
	return parseTemplate(data)
}

func parseTemplate(data []byte) (Template, error) {
	var template Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&template); err != nil && !errors.Is(err, io.EOF) {
		return Template{}, fmt.Errorf("error parsing template: %w", err)
	}
	return template, nil
}

// initializeGridConfig merges a template over the standard geometry and
// palette, then validates the result.
func initializeGridConfig(template Template) (GridConfig, error) {
	def := DefaultGridConfig()
	layout, style := template.Layout, template.Style

	cfg := GridConfig{
		MarginLeft:   getFloat64(layout.MarginLeft, def.MarginLeft),
		MarginRight:  getFloat64(layout.MarginRight, def.MarginRight),
		MarginTop:    getFloat64(layout.MarginTop, def.MarginTop),
		MarginBottom: getFloat64(layout.MarginBottom, def.MarginBottom),
		LaneHeight:   getFloat64(layout.LaneHeight, def.LaneHeight),
		HourWidth:    getFloat64(layout.HourWidth, def.HourWidth),

		FontFamily:      getString(style.FontFamily, def.FontFamily),
		Background:      getString(style.Background, def.Background),
		GridMajorColor:  getString(style.GridMajorColor, def.GridMajorColor),
		GridMinorColor:  getString(style.GridMinorColor, def.GridMinorColor),
		LabelColor:      getString(style.LabelColor, def.LabelColor),
		MutedColor:      getString(style.MutedColor, def.MutedColor),
		TotalColor:      getString(style.TotalColor, def.TotalColor),
		GrandTotalColor: getString(style.GrandTotalColor, def.GrandTotalColor),
		TraceWidth:      getFloat64(style.TraceWidth, def.TraceWidth),
	}
	if err := cfg.Validate(); err != nil {
		return GridConfig{}, err
	}
	return cfg, nil
}

// parseTripPlan accepts either the planning service response
// ({"log_sheets": [...]}) or a bare array of log sheets.
func parseTripPlan(data []byte) (TripPlan, error) {
	var plan TripPlan
	err := json.Unmarshal(data, &plan)
	if err == nil && plan.LogSheets != nil {
		return plan, nil
	}

	var sheets []LogSheet
	errDirect := json.Unmarshal(data, &sheets)
	if errDirect != nil {
		if err != nil {
			return TripPlan{}, fmt.Errorf("error parsing trip plan: %w (also failed direct array parse: %v)", err, errDirect)
		}
		return TripPlan{}, fmt.Errorf("error parsing trip plan: no log_sheets found")
	}
	return TripPlan{LogSheets: sheets}, nil
}

package main

import (
	"strings"
)

// --- XML/HTML Escaping ---

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

var escapeHTML = escapeXML

func ternary(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}
	return falseVal
}

// --- Template Merge Helpers ---

func getString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func getFloat64(ptr *float64, def float64) float64 {
	if ptr != nil {
		return *ptr
	}
	return def
}

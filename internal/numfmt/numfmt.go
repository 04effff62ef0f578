// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

// Package numfmt formats counts for people, with locale-aware digit grouping.
package numfmt

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printersMu sync.Mutex
	printers   = make(map[string]*message.Printer)
)

// printer returns a cached message.Printer for locale. Unparsable locales
// fall back to English.
func printer(locale string) *message.Printer {
	printersMu.Lock()
	defer printersMu.Unlock()
	if p, ok := printers[locale]; ok {
		return p
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	printers[locale] = p
	return p
}

// Int formats n with the locale's thousands separator ("1,234,567" in
// English, "1 234 567" with no-break spaces in Czech).
func Int(locale string, n int) string {
	return printer(locale).Sprintf("%d", n)
}

// Percent formats part/whole as a percentage with one decimal place. A zero
// whole yields "0%" in the locale's notation.
func Percent(locale string, part, whole int) string {
	if whole == 0 {
		return printer(locale).Sprintf("%d%%", 0)
	}
	return printer(locale).Sprintf("%.1f%%", float64(part)*100/float64(whole))
}

// Signed formats n with an explicit sign, for deltas.
func Signed(locale string, n int) string {
	if n > 0 {
		return "+" + Int(locale, n)
	}
	return Int(locale, n)
}

// SignedPercent formats part/whole like Percent with an explicit plus sign
// for growth.
func SignedPercent(locale string, part, whole int) string {
	if part > 0 && whole != 0 {
		return "+" + Percent(locale, part, whole)
	}
	return Percent(locale, part, whole)
}

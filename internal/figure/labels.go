// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package figure

import (
	"fmt"
	"strings"
)

// Labels holds the user-visible strings of the dashboard for one locale.
type Labels struct {
	Locale       string `json:"locale"`
	Year         string `json:"year"`
	Persons      string `json:"persons"`
	Country      string `json:"country"`
	AllCountries string `json:"all_countries"`
	Other        string `json:"other"`
	MapTitle     string `json:"map_title"`
	BarTitle     string `json:"bar_title"`
	Empty        string `json:"empty"`
	Play         string `json:"play"`
	Pause        string `json:"pause"`
	Animate      string `json:"animate"`
	TopN         string `json:"top_n"`
	Apply        string `json:"apply"`
	Source       string `json:"source"`
	Total        string `json:"total"`
	Countries    string `json:"countries"`
	Years        string `json:"years"`
	OtherShare   string `json:"other_share"`
	Share        string `json:"share"`
	Generated    string `json:"generated"`
	NoData       string `json:"no_data"`
}

var labelsByLocale = map[string]Labels{
	"cs": {
		Locale:       "cs",
		Year:         "Rok",
		Persons:      "Počet osob",
		Country:      "Země",
		AllCountries: "všech zemí",
		Other:        "Ostatní",
		MapTitle:     "Počet cizinců z %s v letech %d–%d",
		BarTitle:     "Vývoj počtu cizinců z %s v letech %d–%d",
		Empty:        "Pro zvolený výběr nejsou k dispozici žádná data.",
		Play:         "Přehrát",
		Pause:        "Pauza",
		Animate:      "Animovat po letech",
		TopN:         "Počet zemí (0 = vše)",
		Apply:        "Zobrazit",
		Source:       "Zdroj dat: Český statistický úřad, data.gov.cz",
		Total:        "Osob celkem",
		Countries:    "Zemí",
		Years:        "Let",
		OtherShare:   "Podíl ostatních",
		Share:        "Odkaz na tento výběr",
		Generated:    "Vygenerováno",
		NoData:       "Datová sada je prázdná.",
	},
	"en": {
		Locale:       "en",
		Year:         "Year",
		Persons:      "Persons",
		Country:      "Country",
		AllCountries: "all countries",
		Other:        "Other",
		MapTitle:     "Foreign residents from %s, %d–%d",
		BarTitle:     "Foreign residents from %s by year, %d–%d",
		Empty:        "No data for the selected range.",
		Play:         "Play",
		Pause:        "Pause",
		Animate:      "Animate by year",
		TopN:         "Countries shown (0 = all)",
		Apply:        "Show",
		Source:       "Data source: Czech Statistical Office, data.gov.cz",
		Total:        "Total persons",
		Countries:    "Countries",
		Years:        "Years",
		OtherShare:   "Other share",
		Share:        "Link to this selection",
		Generated:    "Generated",
		NoData:       "The dataset is empty.",
	},
}

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "cs"

// LabelsFor returns the labels for locale. Region suffixes are ignored
// ("en-GB" reads as "en") and unknown locales fall back to Czech.
func LabelsFor(locale string) Labels {
	base, _, _ := strings.Cut(strings.ToLower(locale), "-")
	base, _, _ = strings.Cut(base, "_")
	if l, ok := labelsByLocale[base]; ok {
		return l
	}
	return labelsByLocale[DefaultLocale]
}

// Locales lists the supported locale codes.
func Locales() []string {
	return []string{"cs", "en"}
}

// MapTitleFor formats the choropleth title for a selection.
func (l Labels) MapTitleFor(country string, from, to int) string {
	return fmt.Sprintf(l.MapTitle, l.countryLabel(country), from, to)
}

// BarTitleFor formats the bar chart title for a selection.
func (l Labels) BarTitleFor(country string, from, to int) string {
	return fmt.Sprintf(l.BarTitle, l.countryLabel(country), from, to)
}

func (l Labels) countryLabel(country string) string {
	if country == "" {
		return l.AllCountries
	}
	return country
}

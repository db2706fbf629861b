// Package law reclassifies legal-instrument references after the
// metadata-driven pass. Keyword detection on the title always wins over
// whatever type the classifier assigned.
package law

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gbazo/bibproc/internal/biblio"
)

// keywords identify Brazilian legal instruments in a lowercased title.
var keywords = []string{
	"lei", "decreto", "portaria", "resolução", "medida provisória",
	"constituição", "código", "estatuto", "norma", "regulamento",
}

// namePattern extracts the instrument type and number, e.g.
// "lei nº 8.666" from "lei nº 8.666/1993".
var namePattern = regexp.MustCompile(`(lei|decreto|portaria|resolução)\s*n[º°]?\s*([\d.]+)`)

// DefaultJurisdiction is filled in when a law row has no jurisdiction.
const DefaultJurisdiction = "Brasil"

// IsLaw reports whether the title names a legal instrument. The match runs
// on the raw lowercased title, not the normalized form.
func IsLaw(title string) bool {
	title = strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// Process runs the law pass over all rows and returns the updated set.
// Matched rows get citation type Lei regardless of earlier classification,
// a structured law name when the title carries one, a default jurisdiction,
// and the online-material marker when a URL is present.
func Process(rows []biblio.Row) []biblio.Row {
	out := make([]biblio.Row, len(rows))
	for i, row := range rows {
		out[i] = apply(row)
	}
	return out
}

func apply(row biblio.Row) biblio.Row {
	if !IsLaw(row.Title) {
		return row
	}

	row.CitationType = biblio.TypeLaw

	if m := namePattern.FindStringSubmatch(strings.ToLower(row.Title)); m != nil {
		// Casers are stateful, so build one per call rather than sharing.
		row.LawName = cases.Title(language.BrazilianPortuguese).String(m[1]) + " nº " + m[2]
	}

	if row.Jurisdiction == "" {
		row.Jurisdiction = DefaultJurisdiction
	}
	if row.URL != "" {
		row.OnlineMaterial = biblio.Yes
	}

	return row
}

// Package title extracts sale details from deals feed entry titles.
package title

import (
	"fmt"
	"strings"

	"steam_sale_finder/internal/model"
)

const (
	percentDelim = "% off"
	priceDelim   = "- Now only "
)

// MalformedTitleError is returned when a title lacks one of the expected delimiters.
type MalformedTitleError struct {
	Title string
}

func (e *MalformedTitleError) Error() string {
	return fmt.Sprintf("title didn't match expected format: %q", e.Title)
}

// Parse splits a title of the form "<PERCENT>% off <GAME> - Now only <PRICE>".
// Only the presence of both delimiters is checked; the content is not validated.
func Parse(title string) (model.ParsedSale, error) {
	p := strings.Index(title, percentDelim)
	g := strings.Index(title, priceDelim)
	if p == -1 || g == -1 {
		return model.ParsedSale{}, &MalformedTitleError{Title: title}
	}

	return model.ParsedSale{
		GameTitle:  strings.TrimSpace(slice(title, p+len(percentDelim), g)),
		PercentOff: strings.TrimSpace(title[:p]),
		Price:      strings.TrimSpace(title[g+len(priceDelim):]),
	}, nil
}

// slice returns s[from:to], or "" when the range is inverted.
func slice(s string, from, to int) string {
	if from >= to {
		return ""
	}
	return s[from:to]
}

package title

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"steam_sale_finder/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  model.ParsedSale
	}{
		{
			name:  "pound price",
			title: "50% off Half-Life 3 - Now only £4.99",
			want:  model.ParsedSale{GameTitle: "Half-Life 3", PercentOff: "50", Price: "£4.99"},
		},
		{
			name:  "surrounding whitespace is trimmed",
			title: "  75 % off   Portal 2   - Now only  £1.74  ",
			want:  model.ParsedSale{GameTitle: "Portal 2", PercentOff: "75", Price: "£1.74"},
		},
		{
			name:  "hyphen inside game title",
			title: "33% off Spider-Man - Remastered - Now only £9.99",
			want:  model.ParsedSale{GameTitle: "Spider-Man - Remastered", PercentOff: "33", Price: "£9.99"},
		},
		{
			name:  "percent is not validated",
			title: "Up to 90% off Humble Bundle - Now only free",
			want:  model.ParsedSale{GameTitle: "Humble Bundle", PercentOff: "Up to 90", Price: "free"},
		},
		{
			name:  "first delimiter occurrence wins",
			title: "10% off 20% off Bundle - Now only £5 - Now only £4",
			want:  model.ParsedSale{GameTitle: "20% off Bundle", PercentOff: "10", Price: "£5 - Now only £4"},
		},
		{
			name:  "reversed delimiters yield empty game title",
			title: "Deal - Now only £3 50% off",
			want:  model.ParsedSale{GameTitle: "", PercentOff: "Deal - Now only £3 50", Price: "£3 50% off"},
		},
		{
			name:  "empty price",
			title: "20% off Braid - Now only ",
			want:  model.ParsedSale{GameTitle: "Braid", PercentOff: "20", Price: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.title)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{name: "no delimiters", title: "No delimiters here"},
		{name: "missing price delimiter", title: "50% off Half-Life 3"},
		{name: "missing percent delimiter", title: "Half-Life 3 - Now only £4.99"},
		{name: "empty", title: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.title)
			var malformed *MalformedTitleError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedTitleError, got %v", err)
			}
			if diff := cmp.Diff(tt.title, malformed.Title); diff != "" {
				t.Errorf("error title mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(model.ParsedSale{}, got); diff != "" {
				t.Errorf("expected zero ParsedSale on failure (-want +got):\n%s", diff)
			}
		})
	}
}

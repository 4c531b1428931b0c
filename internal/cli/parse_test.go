package cli

import (
	"reflect"
	"testing"
)

func TestParseCenter(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantX   float64
		wantY   float64
		wantErr bool
	}{
		{"origin", "0,0", 0, 0, false},
		{"positive", "100,50", 100, 50, false},
		{"negative", "-10,-20.5", -10, -20.5, false},
		{"whitespace", " 3 , 4 ", 3, 4, false},
		{"missing y", "100", 0, 0, true},
		{"too many parts", "1,2,3", 0, 0, true},
		{"non-numeric x", "a,0", 0, 0, true},
		{"non-numeric y", "0,b", 0, 0, true},
		{"empty", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCenter(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseCenter(%q) expected error, got %v", tt.arg, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCenter(%q) unexpected error: %v", tt.arg, err)
			}
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("parseCenter(%q) = (%g, %g), want (%g, %g)", tt.arg, got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want []string
	}{
		{"empty yields nil", "", nil},
		{"single", "home", []string{"home"}},
		{"multiple", "home,search,profile", []string{"home", "search", "profile"}},
		{"trims whitespace", " home , search ", []string{"home", "search"}},
		{"keeps empty segments", "a,,b", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLabels(tt.arg); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseLabels(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestJoinLabelsRoundTrip(t *testing.T) {
	labels := []string{"home", "search", "profile"}
	if got := parseLabels(joinLabels(labels)); !reflect.DeepEqual(got, labels) {
		t.Errorf("parseLabels(joinLabels(%v)) = %v", labels, got)
	}
}

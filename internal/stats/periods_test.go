package stats

import "testing"

func TestParseLookback(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"yesterday", 1, false},
		{"Week", 7, false},
		{" 180 ", 180, false},
		{"year", 365, false},
		{"2", 0, true},
		{"fortnight", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParseLookback(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLookback(%q) failed: %v", tt.in, err)
			}
			if p.Days != tt.want {
				t.Errorf("ParseLookback(%q) = %d, want %d", tt.in, p.Days, tt.want)
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	p, err := ParseRange("3months")
	if err != nil || p.Days != 90 {
		t.Errorf("ParseRange(3months) = %+v, %v", p, err)
	}
	if _, err := ParseRange("1"); err == nil {
		t.Error("expected 1 day to be rejected for range statistics")
	}
}

package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"NYC Tower", 20, "NYC Tower"},
		{"Riverside Apartments", 10, "Riverside…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.w)
		if got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.want)
		}
		if VisualWidth(got) > tt.w && tt.w > 0 {
			t.Errorf("Truncate(%q, %d) width %d exceeds max", tt.in, tt.w, VisualWidth(got))
		}
	}
}

func TestPad(t *testing.T) {
	if got := PadRightVisual("ab", 4); got != "ab  " {
		t.Errorf("PadRightVisual = %q", got)
	}
	if got := PadLeftVisual("ab", 4); got != "  ab" {
		t.Errorf("PadLeftVisual = %q", got)
	}
	if got := PadRightVisual("abcdef", 4); VisualWidth(got) != 4 {
		t.Errorf("PadRightVisual overflow = %q", got)
	}
}

func TestRow(t *testing.T) {
	got := Row([]int{4, 3}, "ab", "long")
	if got != "ab    lo…" {
		t.Errorf("Row = %q", got)
	}
}

func TestMoney(t *testing.T) {
	tests := map[int]string{
		950:      "$950",
		12500:    "$12.5K",
		2400000:  "$2.4M",
		-1200000: "-$1.2M",
		0:        "$0",
	}
	for in, want := range tests {
		if got := Money(in); got != want {
			t.Errorf("Money(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestBar(t *testing.T) {
	if got := Bar(50, 4); got != "██░░" {
		t.Errorf("Bar(50,4) = %q", got)
	}
	if got := Bar(150, 2); got != "██" {
		t.Errorf("Bar clamps: %q", got)
	}
	if got := Bar(10, 0); got != "" {
		t.Errorf("Bar zero width = %q", got)
	}
}

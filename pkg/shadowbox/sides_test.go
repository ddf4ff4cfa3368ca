package shadowbox

import "testing"

func TestSideSetMembership(t *testing.T) {
	s := Sides(SideTop, SideLeft)
	if !s.Has(SideTop) || !s.Has(SideLeft) {
		t.Error("expected top and left in the set")
	}
	if s.Has(SideRight) || s.Has(SideBottom) {
		t.Error("right and bottom should be absent")
	}

	s = s.With(SideRight)
	if !s.Has(SideRight) {
		t.Error("With should add the edge")
	}
	s = s.Without(SideTop)
	if s.Has(SideTop) {
		t.Error("Without should remove the edge")
	}
	// Removing an absent edge is a no-op.
	if got := s.Without(SideTop); got != s {
		t.Errorf("Without on absent edge changed the set: %v", got)
	}
}

func TestSideSetString(t *testing.T) {
	tests := []struct {
		set  SideSet
		want string
	}{
		{SideSet(0), "none"},
		{Sides(SideTop), "top"},
		{Sides(SideBottom, SideRight), "right|bottom"},
		{SidesAll, "top|right|bottom|left"},
	}
	for _, tt := range tests {
		if got := tt.set.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseSideSet(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  SideSet
	}{
		{"nil means all", nil, SidesAll},
		{"empty means none", []string{}, SideSet(0)},
		{"single", []string{"top"}, Sides(SideTop)},
		{"pair", []string{"left", "right"}, Sides(SideLeft, SideRight)},
		{"case and space insensitive", []string{" Top ", "BOTTOM"}, Sides(SideTop, SideBottom)},
		{"duplicates collapse", []string{"top", "top"}, Sides(SideTop)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSideSet(tt.input)
			if err != nil {
				t.Fatalf("ParseSideSet(%v) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSideSet(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSideSetUnknown(t *testing.T) {
	if _, err := ParseSideSet([]string{"top", "middle"}); err == nil {
		t.Error("expected error for unknown side name")
	}
}

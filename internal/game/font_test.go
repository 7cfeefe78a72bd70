package game

import "testing"

func TestGlyphCoverage(t *testing.T) {
	// Everything the HUD and log panel can emit must have a glyph.
	needed := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.,:->[]()%/#*+!<"
	for _, ch := range needed {
		if _, ok := glyphs[ch]; !ok {
			t.Errorf("missing glyph for %q", ch)
		}
	}
}

func TestGlyphShape(t *testing.T) {
	for ch, g := range glyphs {
		empty := true
		for _, row := range g {
			if row >= 1<<glyphW {
				t.Errorf("glyph %q row uses more than %d bits: %#x", ch, glyphW, row)
			}
			if row != 0 {
				empty = false
			}
		}
		if empty {
			t.Errorf("glyph %q is blank", ch)
		}
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("ABC", 1); got != 18 {
		t.Errorf("TextWidth(ABC,1) = %d, want 18", got)
	}
	if got := TextWidth("", 2); got != 0 {
		t.Errorf("TextWidth empty = %d, want 0", got)
	}
	// Multi-line text measures the widest line.
	if got := TextWidth("AB\nABCD\nA", 1); got != 24 {
		t.Errorf("TextWidth multiline = %d, want 24", got)
	}
}

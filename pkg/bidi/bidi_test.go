package bidi

import (
	"testing"

	"github.com/go-drift/disclosure/pkg/placement"
)

func TestMirrorName(t *testing.T) {
	tests := map[string]string{
		"top":         "top",
		"bottom":      "bottom",
		"left":        "right",
		"right":       "left",
		"topLeft":     "topRight",
		"bottomRight": "bottomLeft",
		"leftTop":     "rightTop",
		"rightBottom": "leftBottom",
	}
	for in, want := range tests {
		if got := MirrorName(in); got != want {
			t.Errorf("MirrorName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMirroredNamesExist(t *testing.T) {
	for name := range placement.Positions {
		if _, ok := placement.Lookup(MirrorName(name)); !ok {
			t.Errorf("mirror of %q (%q) is not a known position", name, MirrorName(name))
		}
	}
}

func TestDefaultPlacement(t *testing.T) {
	if got := DefaultPlacement(LTR, "rightTop"); got != "rightTop" {
		t.Errorf("LTR default = %q", got)
	}
	if got := DefaultPlacement(RTL, "rightTop"); got != "leftTop" {
		t.Errorf("RTL default = %q, want leftTop", got)
	}
	got := DefaultPlacements(RTL, []string{"bottomLeft", "topLeft"})
	if got[0] != "bottomRight" || got[1] != "topRight" {
		t.Errorf("DefaultPlacements = %v", got)
	}
}

func TestMirrorList(t *testing.T) {
	list := placement.Named("rightTop", "top")
	list[0].OffsetX = 4
	mirrored := MirrorList(list)

	want, _ := placement.Lookup("leftTop")
	want.OffsetX = -4
	if mirrored[0] != want {
		t.Errorf("mirrored[0] = %+v, want %+v", mirrored[0], want)
	}
	if mirrored[1] != list[1] {
		t.Errorf("centered candidate changed: %+v", mirrored[1])
	}
	if list[0].Name != "rightTop" {
		t.Error("MirrorList must not modify its input")
	}
}

func TestExpandIcon(t *testing.T) {
	if got := ExpandIcon(LTR, ""); got != "right" {
		t.Errorf("LTR = %q", got)
	}
	if got := ExpandIcon(RTL, ""); got != "left" {
		t.Errorf("RTL = %q", got)
	}
	if got := ExpandIcon(RTL, "down"); got != "down" {
		t.Errorf("explicit = %q", got)
	}
}

func TestParse(t *testing.T) {
	if d, err := Parse("RTL"); err != nil || d != RTL {
		t.Errorf("Parse(RTL) = %v, %v", d, err)
	}
	if d, err := Parse(""); err != nil || d != LTR {
		t.Errorf("Parse(\"\") = %v, %v", d, err)
	}
	if _, err := Parse("ttb"); err == nil {
		t.Error("Parse(ttb) should fail")
	}
}

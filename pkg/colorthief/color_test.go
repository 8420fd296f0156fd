package colorthief

import (
	"image/color"
	"testing"
)

func TestColorFormats(t *testing.T) {
	c := Color{R: 26, G: 43, B: 255}
	if got := c.Hex(); got != "#1A2BFF" {
		t.Errorf("Hex() = %q, want %q", got, "#1A2BFF")
	}
	if got := c.String(); got != "rgb(26, 43, 255)" {
		t.Errorf("String() = %q, want %q", got, "rgb(26, 43, 255)")
	}
	if got := c.Tuple(); got != [3]int{26, 43, 255} {
		t.Errorf("Tuple() = %v", got)
	}
	if got := ColorFrom(c); got != c {
		t.Errorf("ColorFrom(Color) = %v, want %v", got, c)
	}
	if got := ColorFrom(color.NRGBA{R: 1, G: 2, B: 3, A: 4}); got != (Color{R: 1, G: 2, B: 3}) {
		t.Errorf("ColorFrom(NRGBA) = %v, want rgb(1, 2, 3)", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#1a2b3c", want: Color{R: 0x1a, G: 0x2b, B: 0x3c}},
		{in: "1A2B3C", want: Color{R: 0x1a, G: 0x2b, B: 0x3c}},
		{in: "#ffffff", want: Color{R: 255, G: 255, B: 255}},
		{in: "#000000", want: Color{}},
		{in: "#zzzzzz", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComplement(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want Color
	}{
		{"colour", Color{R: 10, G: 100, B: 200}, Color{R: 200, G: 110, B: 10}},
		{"grey", Color{R: 128, G: 128, B: 128}, Color{R: 128, G: 128, B: 128}},
		{"white", Color{R: 250, G: 250, B: 250}, Color{}},
		{"black", Color{R: 1, G: 2, B: 3}, Color{R: 255, G: 255, B: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Complement(); got != tt.want {
				t.Errorf("Complement() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSwatchShare(t *testing.T) {
	s := Swatch{Count: 25}
	if got := s.Share(100); got != 0.25 {
		t.Errorf("Share(100) = %v, want 0.25", got)
	}
	if got := s.Share(0); got != 0 {
		t.Errorf("Share(0) = %v, want 0", got)
	}
}

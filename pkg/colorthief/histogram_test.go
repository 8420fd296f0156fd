package colorthief

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func repeat(p Pixel, n int) []Pixel {
	pixels := make([]Pixel, n)
	for i := range pixels {
		pixels[i] = p
	}
	return pixels
}

func TestFilterKeep(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		pixel  Pixel
		want   bool
	}{
		{"opaque colour", Filter{true, true}, Pixel{120, 60, 200, 255}, true},
		{"transparent", Filter{}, Pixel{120, 60, 200, 0}, false},
		{"below alpha threshold", Filter{}, Pixel{120, 60, 200, AlphaThreshold - 1}, false},
		{"at alpha threshold", Filter{}, Pixel{120, 60, 200, AlphaThreshold}, true},
		{"white excluded", Filter{ExcludeWhite: true}, Pixel{250, 250, 250, 255}, false},
		{"white kept", Filter{ExcludeBlack: true}, Pixel{250, 250, 250, 255}, true},
		{"white threshold is exclusive", Filter{ExcludeWhite: true}, Pixel{WhiteThreshold, 255, 255, 255}, true},
		{"black excluded", Filter{ExcludeBlack: true}, Pixel{2, 3, 4, 255}, false},
		{"black kept", Filter{ExcludeWhite: true}, Pixel{2, 3, 4, 255}, true},
		{"black threshold is exclusive", Filter{ExcludeBlack: true}, Pixel{0, 0, BlackThreshold, 255}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Keep(tt.pixel); got != tt.want {
				t.Errorf("Keep(%v) = %v, want %v", tt.pixel, got, tt.want)
			}
		})
	}
}

func TestFilterApply(t *testing.T) {
	pixels := []Pixel{
		{255, 255, 255, 255},
		{10, 200, 30, 255},
		{0, 0, 0, 255},
		{10, 200, 30, 0},
		{90, 80, 70, 255},
	}
	got := Filter{ExcludeWhite: true, ExcludeBlack: true}.Apply(pixels)
	want := []Pixel{{10, 200, 30, 255}, {90, 80, 70, 255}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}
}

func TestSignatureChannels(t *testing.T) {
	sig := SignatureOf(255, 128, 7)
	r, g, b := sig.Channels()
	if r != 31 || g != 16 || b != 0 {
		t.Errorf("Channels() = (%d, %d, %d), want (31, 16, 0)", r, g, b)
	}
	if sig != Signature(31<<10|16<<5) {
		t.Errorf("SignatureOf() = %d, want %d", sig, 31<<10|16<<5)
	}
}

func TestBuildHistogram(t *testing.T) {
	pixels := append(repeat(Pixel{200, 100, 50, 255}, 6), repeat(Pixel{20, 40, 60, 255}, 4)...)

	h, err := BuildHistogram(pixels, 1, Filter{})
	if err != nil {
		t.Fatalf("BuildHistogram() error = %v", err)
	}
	if h.Total() != 10 {
		t.Errorf("Total() = %d, want 10", h.Total())
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
	if got := h.Count(SignatureOf(200, 100, 50)); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
	want := []Signature{SignatureOf(20, 40, 60), SignatureOf(200, 100, 50)}
	if diff := cmp.Diff(want, h.Signatures()); diff != "" {
		t.Errorf("Signatures() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHistogramQualityStride(t *testing.T) {
	pixels := make([]Pixel, 101)
	for i := range pixels {
		pixels[i] = Pixel{uint8(i), uint8(2 * i), 100, 255}
	}

	for _, quality := range []int{1, 2, 3, 7, 10, 50, 101, 500} {
		h, err := BuildHistogram(pixels, quality, Filter{})
		if err != nil {
			t.Fatalf("BuildHistogram(quality=%d) error = %v", quality, err)
		}
		limit := (len(pixels) + quality - 1) / quality
		if h.Total() > limit {
			t.Errorf("quality %d sampled %d pixels, want at most %d", quality, h.Total(), limit)
		}
		if h.Total() != limit {
			t.Errorf("quality %d sampled %d pixels, want exactly %d for unfiltered input", quality, h.Total(), limit)
		}
	}
}

func TestBuildHistogramInvalidQuality(t *testing.T) {
	for _, quality := range []int{0, -1} {
		_, err := BuildHistogram([]Pixel{{1, 2, 3, 255}}, quality, Filter{})
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("BuildHistogram(quality=%d) error = %v, want ErrInvalidParameter", quality, err)
		}
	}
}

func TestBuildHistogramEmpty(t *testing.T) {
	h, err := BuildHistogram(repeat(Pixel{255, 255, 255, 255}, 5), 1, Filter{ExcludeWhite: true})
	if err != nil {
		t.Fatalf("BuildHistogram() error = %v", err)
	}
	if !h.Empty() {
		t.Errorf("Empty() = false, want true")
	}
	if _, err := (Quantizer{MaxColors: 4}).Quantize(h); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Quantize() error = %v, want ErrEmptyInput", err)
	}
}

func TestPixelsFromImage(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rgba.Set(0, 0, color.RGBA{R: 255, A: 255})
	rgba.Set(1, 0, color.RGBA{G: 255, A: 255})
	rgba.Set(0, 1, color.RGBA{B: 255, A: 255})

	nrgba := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	nrgba.SetNRGBA(5, 5, color.NRGBA{R: 255, A: 255})
	nrgba.SetNRGBA(6, 5, color.NRGBA{G: 255, A: 255})
	nrgba.SetNRGBA(5, 6, color.NRGBA{B: 255, A: 255})

	want := []Pixel{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}, {0, 0, 0, 0}}
	for name, img := range map[string]image.Image{"rgba": rgba, "nrgba": nrgba} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(want, PixelsFromImage(img)); diff != "" {
				t.Errorf("PixelsFromImage() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPixelsFromRGBA(t *testing.T) {
	got, err := PixelsFromRGBA([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatalf("PixelsFromRGBA() error = %v", err)
	}
	if diff := cmp.Diff([]Pixel{{1, 2, 3, 4}, {5, 6, 7, 8}}, got); diff != "" {
		t.Errorf("PixelsFromRGBA() mismatch (-want +got):\n%s", diff)
	}

	if _, err := PixelsFromRGBA([]byte{1, 2, 3}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("PixelsFromRGBA(short) error = %v, want ErrInvalidParameter", err)
	}
}

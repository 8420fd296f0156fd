package colorthief

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(*Options) {}, false},
		{"quality zero", func(o *Options) { o.Quality = 0 }, true},
		{"colour count zero", func(o *Options) { o.ColorCount = 0 }, true},
		{"colour count one", func(o *Options) { o.ColorCount = 1 }, false},
		{"colour count maximum", func(o *Options) { o.ColorCount = MaxColors }, false},
		{"colour count too large", func(o *Options) { o.ColorCount = MaxColors + 1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Validate() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestPaletteBounds(t *testing.T) {
	thief := New(randomPixels(7, 4000))
	for _, k := range []int{1, 2, 5, 10, 32} {
		opts := DefaultOptions()
		opts.ColorCount = k
		palette, err := thief.Palette(opts)
		if err != nil {
			t.Fatalf("Palette(%d) error = %v", k, err)
		}
		if len(palette) == 0 || len(palette) > k {
			t.Errorf("Palette(%d) returned %d colours", k, len(palette))
		}
	}
}

func TestPaletteDistributionSumsToSampledPixels(t *testing.T) {
	pixels := randomPixels(11, 3000)
	thief := New(pixels)

	for _, quality := range []int{1, 3, 10} {
		opts := DefaultOptions()
		opts.Quality = quality

		swatches, err := thief.PaletteDistribution(opts)
		if err != nil {
			t.Fatalf("PaletteDistribution() error = %v", err)
		}
		want := 0
		filter := opts.filter()
		for i := 0; i < len(pixels); i += quality {
			if filter.Keep(pixels[i]) {
				want++
			}
		}
		got := 0
		for _, s := range swatches {
			got += s.Count
		}
		if got != want {
			t.Errorf("quality %d: distribution sums to %d, want %d", quality, got, want)
		}
	}
}

func TestPaletteDeterministic(t *testing.T) {
	pixels := randomPixels(3, 2500)
	opts := DefaultOptions()
	opts.ColorCount = 8
	opts.Quality = 2

	first, err := New(pixels).PaletteDistribution(opts)
	if err != nil {
		t.Fatalf("PaletteDistribution() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := New(pixels).PaletteDistribution(opts)
		if err != nil {
			t.Fatalf("PaletteDistribution() error = %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Errorf("PaletteDistribution() differs between runs (-first +again):\n%s", diff)
		}
	}
}

func TestPaletteConcurrent(t *testing.T) {
	thief := New(randomPixels(5, 2000))
	opts := DefaultOptions()
	want, err := thief.Palette(opts)
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}

	var wg sync.WaitGroup
	results := make([][]Color, 8)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = thief.Palette(opts)
		}()
	}
	wg.Wait()
	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("goroutine %d palette mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestExcludeWhite(t *testing.T) {
	offWhite := Pixel{200, 180, 160, 255}
	pixels := append(repeat(Pixel{250, 250, 250, 255}, 99), offWhite)

	swatches, err := New(pixels).PaletteDistribution(DefaultOptions())
	if err != nil {
		t.Fatalf("PaletteDistribution() error = %v", err)
	}
	want := []Swatch{{Color: Color{R: 200, G: 180, B: 160}, Count: 1}}
	if diff := cmp.Diff(want, swatches); diff != "" {
		t.Errorf("PaletteDistribution() mismatch (-want +got):\n%s", diff)
	}

	_, err = New(repeat(Pixel{250, 250, 250, 255}, 10)).Palette(DefaultOptions())
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Palette() on all-white error = %v, want ErrEmptyInput", err)
	}

	opts := DefaultOptions()
	opts.ExcludeWhite = false
	palette, err := New(repeat(Pixel{250, 250, 250, 255}, 10)).Palette(opts)
	if err != nil {
		t.Fatalf("Palette() with white allowed error = %v", err)
	}
	if diff := cmp.Diff([]Color{{R: 250, G: 250, B: 250}}, palette); diff != "" {
		t.Errorf("Palette() mismatch (-want +got):\n%s", diff)
	}
}

func TestColorSingleColourImage(t *testing.T) {
	want := Color{R: 123, G: 45, B: 67}
	got, err := New(repeat(Pixel{123, 45, 67, 255}, 64)).Color(DefaultOptions())
	if err != nil {
		t.Fatalf("Color() error = %v", err)
	}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestTwoClusterImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= 10 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}

	opts := DefaultOptions()
	opts.ColorCount = 2
	swatches, err := FromImage(img).PaletteDistribution(opts)
	if err != nil {
		t.Fatalf("PaletteDistribution() error = %v", err)
	}
	want := []Swatch{
		{Color: Color{B: 255}, Count: 100},
		{Color: Color{R: 255}, Count: 100},
	}
	if diff := cmp.Diff(want, swatches); diff != "" {
		t.Errorf("PaletteDistribution() mismatch (-want +got):\n%s", diff)
	}
}

func TestColorPicksMostPopulousBox(t *testing.T) {
	pixels := append(repeat(Pixel{0, 0, 255, 255}, 40), repeat(Pixel{255, 0, 0, 255}, 60)...)
	s, err := New(pixels).ColorDistribution(DefaultOptions())
	if err != nil {
		t.Fatalf("ColorDistribution() error = %v", err)
	}
	if want := (Swatch{Color: Color{R: 255}, Count: 60}); s != want {
		t.Errorf("ColorDistribution() = %+v, want %+v", s, want)
	}
}

func TestDefaultColorFallback(t *testing.T) {
	transparent := repeat(Pixel{10, 200, 30, 0}, 16)
	fallback := Color{R: 10, G: 20, B: 30}

	thief := New(transparent, WithDefaultColor(fallback))
	got, err := thief.Color(DefaultOptions())
	if err != nil {
		t.Fatalf("Color() error = %v", err)
	}
	if got != fallback {
		t.Errorf("Color() = %v, want %v", got, fallback)
	}

	palette, err := thief.Palette(DefaultOptions())
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}
	if diff := cmp.Diff([]Color{fallback}, palette); diff != "" {
		t.Errorf("Palette() mismatch (-want +got):\n%s", diff)
	}

	swatches, err := thief.PaletteDistribution(DefaultOptions())
	if err != nil {
		t.Fatalf("PaletteDistribution() error = %v", err)
	}
	if diff := cmp.Diff([]Swatch{{Color: fallback}}, swatches); diff != "" {
		t.Errorf("PaletteDistribution() mismatch (-want +got):\n%s", diff)
	}

	if _, err := New(transparent).Color(DefaultOptions()); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Color() without default error = %v, want ErrEmptyInput", err)
	}
	if _, err := New(nil).Palette(DefaultOptions()); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Palette() on no pixels error = %v, want ErrEmptyInput", err)
	}
}

func TestInvalidParametersBeatDefaultColor(t *testing.T) {
	thief := New(nil, WithDefaultColor(Color{R: 1}))
	opts := DefaultOptions()
	opts.Quality = 0
	if _, err := thief.Color(opts); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Color() error = %v, want ErrInvalidParameter", err)
	}
	opts = DefaultOptions()
	opts.ColorCount = 0
	if _, err := thief.Palette(opts); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Palette() error = %v, want ErrInvalidParameter", err)
	}
}

func TestFromReader(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:], []byte{30, 144, 255, 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}

	thief, err := FromReader(&buf)
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	got, err := thief.Color(DefaultOptions())
	if err != nil {
		t.Fatalf("Color() error = %v", err)
	}
	if want := (Color{R: 30, G: 144, B: 255}); got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}

	if _, err := FromReader(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("FromReader() error = nil for garbage input")
	}
}

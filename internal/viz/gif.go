package viz

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
)

var errNoFrames = errors.New("viz: no frames recorded")

const (
	gifCharW = 8
	gifCharH = 16
	// gifDelay is in 100ths of a second.
	gifDelay = 3
)

// GIFRecorder rasterizes canvas frames for an animated GIF.
type GIFRecorder struct {
	palette color.Palette
	frames  []*image.Paletted
}

func NewGIFRecorder(bg, fg color.Color) *GIFRecorder {
	return &GIFRecorder{palette: color.Palette{bg, fg}}
}

func (r *GIFRecorder) Len() int { return len(r.frames) }

// Capture draws every set braille dot of c as a block of pixels.
func (r *GIFRecorder) Capture(c *Canvas) {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*gifCharW, c.Height*gifCharH), r.palette)
	dotW, dotH := gifCharW/2, gifCharH/4
	dw, dh := c.Dots()
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if !c.IsSet(x, y) {
				continue
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, 1)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

func (r *GIFRecorder) Save(path string) error {
	if len(r.frames) == 0 {
		return errNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, gifDelay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}

// Package gifdecoder reads animated GIF files back into frames.
package gifdecoder

import (
	"fmt"
	"image/gif"
	"io"

	"github.com/user/img2gif/pkg/ports"
)

// Decoder implements ports.AnimationDecoder for GIF.
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode reads every frame of a GIF. Delays are converted to milliseconds.
// Frames are returned as stored, without compositing them onto the canvas.
func (d *Decoder) Decode(r io.Reader) (*ports.Animation, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode gif: %w", err)
	}

	anim := &ports.Animation{
		Width:     g.Config.Width,
		Height:    g.Config.Height,
		LoopCount: g.LoopCount,
		Frames:    make([]ports.AnimationFrame, len(g.Image)),
	}
	for i, img := range g.Image {
		anim.Frames[i] = ports.AnimationFrame{
			Image:   img,
			DelayMs: g.Delay[i] * 10,
		}
	}
	return anim, nil
}

// TotalDurationMs sums the delays of all frames.
func TotalDurationMs(anim *ports.Animation) int {
	total := 0
	for _, f := range anim.Frames {
		total += f.DelayMs
	}
	return total
}

// Ensure Decoder implements ports.AnimationDecoder
var _ ports.AnimationDecoder = (*Decoder)(nil)

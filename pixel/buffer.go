package pixel

import (
	"sync"

	"github.com/sc2682/ImageProcessor/geom"
	"github.com/sc2682/ImageProcessor/internal/consts"
	"github.com/sc2682/ImageProcessor/internal/errors"
)

// Buffer is a 2D raster of native pixels addressable by (x, y). Pixel access
// goes through a Frame obtained with Acquire, which holds the buffer's lock
// for the duration of a processing pass.
type Buffer[P Pixel[P]] struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []P
}

// NewBuffer allocates a zeroed buffer of the given dimensions.
func NewBuffer[P Pixel[P]](width, height int) *Buffer[P] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer[P]{
		width:  width,
		height: height,
		pix:    make([]P, width*height),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer[P]) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer[P]) Height() int { return b.height }

// Bounds returns the buffer extent as a rectangle at the origin.
func (b *Buffer[P]) Bounds() geom.Rectangle {
	return geom.Rect(0, 0, b.width, b.height)
}

// Acquire locks the buffer and returns a frame for indexed pixel access.
// The caller must Release the frame when the pass is done; Release is
// safe to defer on every exit path. Concurrent Get/Set through one frame
// are allowed as long as writers touch disjoint pixels.
func (b *Buffer[P]) Acquire() (*Frame[P], error) {
	if b == nil {
		return nil, errors.New(consts.ErrNilReceiver)
	}
	b.mu.Lock()
	return &Frame[P]{buf: b}, nil
}

// Frame is scoped pixel access into a locked buffer.
type Frame[P Pixel[P]] struct {
	buf  *Buffer[P]
	once sync.Once
}

// Get returns the pixel at (x, y). Out-of-range coordinates return the
// zero pixel rather than panicking; callers bounds-check their loops.
func (f *Frame[P]) Get(x, y int) P {
	if x < 0 || x >= f.buf.width || y < 0 || y >= f.buf.height {
		var zero P
		return zero
	}
	return f.buf.pix[y*f.buf.width+x]
}

// Set stores the pixel at (x, y). Out-of-range coordinates are ignored.
func (f *Frame[P]) Set(x, y int, p P) {
	if x < 0 || x >= f.buf.width || y < 0 || y >= f.buf.height {
		return
	}
	f.buf.pix[y*f.buf.width+x] = p
}

// Release unlocks the underlying buffer. Calling Release more than once
// is harmless.
func (f *Frame[P]) Release() {
	if f == nil || f.buf == nil {
		return
	}
	f.once.Do(f.buf.mu.Unlock)
}

package pixel

import (
	"image"
	"image/draw"

	"github.com/sc2682/ImageProcessor/internal/consts"
	"github.com/sc2682/ImageProcessor/internal/errors"
)

// FromImage copies an image into a freshly allocated RGBA buffer,
// converting through non-premultiplied NRGBA.
func FromImage(img image.Image) (*Buffer[RGBA], error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	bounds := img.Bounds()
	nimg, ok := img.(*image.NRGBA)
	if !ok {
		nimg = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nimg, nimg.Bounds(), img, bounds.Min, draw.Src)
	}
	buf := NewBuffer[RGBA](bounds.Dx(), bounds.Dy())
	frame, err := buf.Acquire()
	if err != nil {
		return nil, err
	}
	defer frame.Release()
	for y := 0; y < buf.Height(); y++ {
		i := nimg.PixOffset(nimg.Bounds().Min.X, nimg.Bounds().Min.Y+y)
		for x := 0; x < buf.Width(); x++ {
			frame.Set(x, y, RGBA{
				R: nimg.Pix[i+0],
				G: nimg.Pix[i+1],
				B: nimg.Pix[i+2],
				A: nimg.Pix[i+3],
			})
			i += 4
		}
	}
	return buf, nil
}

// ToNRGBA copies an RGBA buffer into a standard library image.
func ToNRGBA(buf *Buffer[RGBA]) (*image.NRGBA, error) {
	if buf == nil {
		return nil, errors.New(consts.ErrNilParam)
	}
	nimg := image.NewNRGBA(image.Rect(0, 0, buf.Width(), buf.Height()))
	frame, err := buf.Acquire()
	if err != nil {
		return nil, err
	}
	defer frame.Release()
	for y := 0; y < buf.Height(); y++ {
		i := nimg.PixOffset(0, y)
		for x := 0; x < buf.Width(); x++ {
			p := frame.Get(x, y)
			nimg.Pix[i+0] = p.R
			nimg.Pix[i+1] = p.G
			nimg.Pix[i+2] = p.B
			nimg.Pix[i+3] = p.A
			i += 4
		}
	}
	return nimg, nil
}

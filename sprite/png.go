package sprite

import (
	"fmt"
	"image/png"
	"io"
)

// WritePNG encodes the mask as a white-on-transparent PNG.
func WritePNG(w io.Writer, m *Mask) error {
	if err := png.Encode(w, m.NRGBA()); err != nil {
		return fmt.Errorf("encoding mask png: %w", err)
	}
	return nil
}

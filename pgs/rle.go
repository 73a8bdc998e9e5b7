package pgs

import (
	"github.com/pgsparse/pgs/pgserr"
	"github.com/pgsparse/pgs/pgsio"
)

// calcRed, calcGreen and calcBlue implement the BT.601 limited-to-full YCbCr
// to RGB conversion, each computed in float32 and truncated to uint8.
func calcRed(y, cr uint8) uint8 {
	r := float32(y) + 1.40200*(float32(cr)-128)
	return clamp255(r)
}

func calcGreen(y, cb, cr uint8) uint8 {
	g := float32(y) - 0.34414*(float32(cb)-128) - 0.71414*(float32(cr)-128)
	return clamp255(g)
}

func calcBlue(y, cb uint8) uint8 {
	b := float32(y) + 1.77200*(float32(cb)-128)
	return clamp255(b)
}

func clamp255(v float32) uint8 {
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}

// getARGB packs a palette entry into 0xAARRGGBB. y is the luminance input to
// each of calcRed/calcGreen/calcBlue (together with that channel's chroma
// inputs), and transparency becomes the alpha byte unchanged; see DESIGN.md
// Open Question 1.
func getARGB(y, cb, cr, transparency uint8) uint32 {
	return uint32(calcBlue(y, cb)) |
		uint32(calcGreen(y, cb, cr))<<8 |
		uint32(calcRed(y, cr))<<16 |
		uint32(transparency)<<24
}

// calcGray derives the replicated grayscale pixel from transparency (alpha)
// and luminance: g = 255 - t*y/255 (integer division), packed as g|g<<8|g<<16.
func calcGray(transparency, luminance uint8) uint32 {
	g := 255 - uint32(transparency)*uint32(luminance)/255
	return g | g<<8 | g<<16
}

const defaultWhite = 0x00FFFFFF

func pixelColor(colorIndex int, pds *PDS, gray bool) uint32 {
	if colorIndex >= len(pds.Entries) {
		return defaultWhite
	}
	e := pds.Entries[colorIndex]
	if gray {
		return calcGray(e.Transparency, e.Luminance)
	}
	return getARGB(e.Luminance, e.ChromaBlue, e.ChromaRed, e.Transparency)
}

// decodeRLE reconstructs a height x width pixel matrix from an ODS's
// run-length payload using pds's palette, per the four prefix-dispatched run
// encodings in SPEC_FULL.md §4.6.
func decodeRLE(pds *PDS, ods *ODS, gray bool) ([][]uint32, error) {
	pixels := make([][]uint32, ods.Height)
	for i := range pixels {
		pixels[i] = make([]uint32, ods.Width)
	}

	buf := pgsio.NewMemoryBuffer(ods.ObjectData)
	row, col := 0, 0

	put := func(color int) error {
		if row >= len(pixels) || col >= int(ods.Width) {
			return pgserr.ErrOutOfBounds
		}
		pixels[row][col] = pixelColor(color, pds, gray)
		col++
		return nil
	}

	for {
		length, err := buf.Len()
		if err != nil {
			return nil, err
		}
		pos, err := buf.Pos()
		if err != nil {
			return nil, err
		}
		if pos >= length {
			break
		}

		b, err := buf.ReadU8()
		if err != nil {
			return nil, err
		}

		if b != 0x00 {
			if err := put(int(b)); err != nil {
				return nil, err
			}
			continue
		}

		// b == 0x00: either end-of-line or a run, dispatched by the next byte.
		d, err := buf.ReadU8()
		if err != nil {
			return nil, err
		}
		if d == 0x00 {
			row++
			col = 0
			pos, err = buf.Pos()
			if err != nil {
				return nil, err
			}
			if pos >= length {
				break
			}
			continue
		}

		switch (d & 0xC0) >> 6 {
		case 0: // run of D pixels, palette index 0
			count := int(d)
			for i := 0; i < count; i++ {
				if err := put(0); err != nil {
					return nil, err
				}
			}
		case 1: // run of ((D&0x3F)<<8)|L pixels, palette index 0
			l, err := buf.ReadU8()
			if err != nil {
				return nil, err
			}
			count := int(d&0x3F)<<8 | int(l)
			for i := 0; i < count; i++ {
				if err := put(0); err != nil {
					return nil, err
				}
			}
		case 2: // run of D&0x3F pixels, palette index C
			c, err := buf.ReadU8()
			if err != nil {
				return nil, err
			}
			count := int(d & 0x3F)
			for i := 0; i < count; i++ {
				if err := put(int(c)); err != nil {
					return nil, err
				}
			}
		case 3: // run of ((D&0x3F)<<8)|L pixels, palette index C
			l, err := buf.ReadU8()
			if err != nil {
				return nil, err
			}
			c, err := buf.ReadU8()
			if err != nil {
				return nil, err
			}
			count := int(d&0x3F)<<8 | int(l)
			for i := 0; i < count; i++ {
				if err := put(int(c)); err != nil {
					return nil, err
				}
			}
		}
	}

	return pixels, nil
}

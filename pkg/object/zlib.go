package object

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// compress zlib-compresses data. Loose objects are stored compressed; this
// and decompress are exact inverses.
func compress(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	// Writes to a bytes.Buffer cannot fail.
	zw.Write(data)
	zw.Close()
	return buf.Bytes()
}

// decompress inflates a zlib stream. Any framing or checksum failure in the
// stream reports ErrCorruptObject; this is the only layer that fails due to
// storage corruption unrelated to the object grammar.
func decompress(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress: %v: %w", err, ErrCorruptObject)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress: %v: %w", err, ErrCorruptObject)
	}
	return out, nil
}

package notation

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/kuchi/core"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode returns a reader delivering the input as UTF-8.
//
// Input which is valid UTF-8 is passed on, with a byte order mark removed.
// Anything else is taken to be Shift_JIS, which older notation files have
// been written in.
func Decode(r io.Reader) (io.Reader, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot read notation input")
	}
	var enc encoding.Encoding = unicode.UTF8BOM
	if !utf8.Valid(raw) {
		tracer().Infof("input is not UTF-8, decoding as Shift_JIS")
		enc = japanese.ShiftJIS
	}
	text, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, core.WrapError(err, core.EPARSE, "cannot decode notation input")
	}
	return bytes.NewReader(text), nil
}

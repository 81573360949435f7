package mimetype

import "unicode/utf8"

const (
	Text   = "text/plain; charset=utf-8"
	Binary = "application/octet-stream"
)

// IsText reports whether data decodes as UTF-8 text, along with the
// mime type it was taken for.
func IsText(data []byte) (string, bool) {
	if utf8.Valid(data) {
		return Text, true
	}

	return Binary, false
}

package qrlabel

import (
	"errors"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyName is returned when there is no composed name to encode.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEncodeFailed is returned when the underlying encoder fails.
	ErrEncodeFailed = errors.New("failed to encode QR label")
)

// defaultSize is the PNG side length in pixels used when none is given.
const defaultSize = 256

// Generate renders name as a square QR code PNG with medium error
// recovery, which survives the wear a device sticker sees. A size of
// zero or less selects the default.
func Generate(name string, size int) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if size <= 0 {
		size = defaultSize
	}

	png, err := qrcode.Encode(name, qrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrEncodeFailed, err)
	}
	return png, nil
}

// Package qrlabel renders composed device names as QR code PNGs, sized
// for sticker printing. It is a thin wrapper around
// github.com/skip2/go-qrcode with a default size and input validation.
//
// Errors are package-level sentinels, so callers can branch with
// errors.Is.
package qrlabel

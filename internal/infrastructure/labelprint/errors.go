package labelprint

import "errors"

var (
	// ErrNoPort means no printer port is configured; printing is disabled.
	ErrNoPort = errors.New("no printer port configured")

	// ErrEmptyName means there is nothing to print yet.
	ErrEmptyName = errors.New("nothing to print")
)

package game

import (
	"errors"

	"github.com/atotto/clipboard"
)

// writeClipboard puts s on the system clipboard.
func writeClipboard(s string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(s)
}

var errClipboardUnsupported = errors.New("clipboard: no clipboard utility available")

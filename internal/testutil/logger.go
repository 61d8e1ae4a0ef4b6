// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"bytes"

	"github.com/charmbracelet/log"
)

// NewDebugLogger returns a logger that records every level into the returned
// buffer, without timestamps.
func NewDebugLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

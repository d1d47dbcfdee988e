//go:build !unix

package lineloop

import "context"

// Resizes never fires where there is no SIGWINCH.
func Resizes(context.Context) <-chan struct{} { return nil }

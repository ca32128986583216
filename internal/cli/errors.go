// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

// ExitCodeErr is implemented by errors that select the process exit code.
type ExitCodeErr interface {
	ExitCode() int
}

// usageError marks bad flags, config files or option values.
type usageError struct{ err error }

func usageErr(err error) error { return usageError{err: err} }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }
func (usageError) ExitCode() int   { return 2 }

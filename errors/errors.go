// Package errors holds error types that know which exit code the process should use.
package errors

// BadConfig means the caller asked for something that cannot be run,
// like an unknown generator variant or a negative sample size.
type BadConfig string

func NewBadConfig(err string) BadConfig {
	return BadConfig(err)
}

func (b BadConfig) Code() int {
	return 2
}

func (b BadConfig) Error() string {
	return string(b)
}

type Internal string

func NewInternal(err string) Internal {
	return Internal(err)
}

func (i Internal) Code() int {
	return 1
}

func (i Internal) Error() string {
	return string(i)
}

// Coder is implemented by errors that map to an exit code.
type Coder interface {
	Code() int
}

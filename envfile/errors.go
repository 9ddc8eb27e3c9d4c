package envfile

import "fmt"

type ReadError struct {
	Path string
	Err  error
}

func (e ReadError) Error() string {
	return fmt.Sprintf("cannot read environment file: %s: %s", e.Path, e.Err)
}

type MalformedLineError struct {
	Path string
	Line int
	Text string
}

func (e MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line in %s:%d: missing '=': %q", e.Path, e.Line, e.Text)
}

type WriteError struct {
	Path string
	Err  error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("cannot write environment file: %s: %s", e.Path, e.Err)
}

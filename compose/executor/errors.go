package executor

import "fmt"

type NotFoundError struct {
	Binary string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("command %q not found: ensure it is installed and in your PATH", e.Binary)
}

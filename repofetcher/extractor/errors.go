package extractor

import "fmt"

type CreateDirectoryError struct {
	Err error
}

func (e CreateDirectoryError) Error() string {
	return fmt.Sprintf("cannot create destination directory: %s", e.Err)
}

type OpenZipError struct {
	Source string
	Err    error
}

func (e OpenZipError) Error() string {
	return fmt.Sprintf("cannot open zip archive: %s: %s", e.Source, e.Err)
}

type ExtractFileError struct {
	Name string
	Err  error
}

func (e ExtractFileError) Error() string {
	return fmt.Sprintf("cannot extract file: %s: %s", e.Name, e.Err)
}

type MakeDirectoryError struct {
	Directory string
	Err       error
}

func (e MakeDirectoryError) Error() string {
	return fmt.Sprintf("cannot make directory: %s: %s", e.Directory, e.Err)
}

type OpenFileError struct {
	Path string
	Err  error
}

func (e OpenFileError) Error() string {
	return fmt.Sprintf("cannot open file: %s: %s", e.Path, e.Err)
}

type WriteFileError struct {
	Path string
	Err  error
}

func (e WriteFileError) Error() string {
	return fmt.Sprintf("cannot write file: %s: %s", e.Path, e.Err)
}

package repofetcher

import "fmt"

type CreateTempFileError struct {
	Err error
}

func (e CreateTempFileError) Error() string {
	return fmt.Sprintf("cannot create temp file: %s", e.Err)
}

type GetUrlError struct {
	Url string
	Err error
}

func (e GetUrlError) Error() string {
	return fmt.Sprintf("cannot GET url: %s: %s", e.Url, e.Err)
}

type GetStatusError struct {
	Url    string
	Status string
}

func (e GetStatusError) Error() string {
	return fmt.Sprintf("cannot GET url: %s: %s", e.Url, e.Status)
}

type WriteResponseError struct {
	Err error
}

func (e WriteResponseError) Error() string {
	return fmt.Sprintf("cannot write response to file: %s", e.Err)
}

type StatRepoError struct {
	Path string
	Err  error
}

func (e StatRepoError) Error() string {
	return fmt.Sprintf("cannot stat repository directory: %s: %s", e.Path, e.Err)
}

type RemoveRepoError struct {
	Path string
	Err  error
}

func (e RemoveRepoError) Error() string {
	return fmt.Sprintf("cannot remove repository directory: %s: %s", e.Path, e.Err)
}

type UnzipError struct {
	Err error
}

func (e UnzipError) Error() string {
	return fmt.Sprintf("cannot unzip repository archive: %s", e.Err)
}

type RenameError struct {
	From string
	To   string
	Err  error
}

func (e RenameError) Error() string {
	return fmt.Sprintf("cannot rename %s to %s: %s", e.From, e.To, e.Err)
}

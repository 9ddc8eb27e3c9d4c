// Package executor runs the docker binary and captures its output.
package executor

import (
	"bytes"
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/afero"
)

const binary = "docker"

func New(fileSystem *afero.Afero) Executor {
	return Executor{fileSystem: fileSystem}
}

type Executor struct {
	fileSystem *afero.Afero
}

// Execute runs docker with args and returns the combined standard output
// and standard error.
func (e Executor) Execute(args ...string) ([]byte, error) {
	command := exec.Command(binary, args...)
	output, err := command.CombinedOutput()
	return output, e.mapError(err)
}

// ExecuteInDirectory is Execute with a working directory.
func (e Executor) ExecuteInDirectory(directory string, args ...string) ([]byte, error) {
	command := exec.Command(binary, args...)
	command.Dir = directory
	output, err := command.CombinedOutput()
	return output, e.mapError(err)
}

// ExecuteToFile runs docker with args in directory, redirecting standard
// output to outputPath. Returns the captured standard error.
func (e Executor) ExecuteToFile(outputPath, directory string, args ...string) ([]byte, error) {
	outputFile, err := e.fileSystem.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	defer outputFile.Close()

	stderr := &bytes.Buffer{}
	command := exec.Command(binary, args...)
	command.Dir = directory
	command.Stdout = outputFile
	command.Stderr = stderr

	err = command.Run()
	return stderr.Bytes(), e.mapError(err)
}

func (e Executor) mapError(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return NotFoundError{binary}
	}
	return err
}

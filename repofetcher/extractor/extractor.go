// Package extractor unzips repository archives.
package extractor

import (
	"archive/zip"
	"io"
	"os"
	"path"

	I "github.com/compozed/stackdactyl/interfaces"
	"github.com/spf13/afero"
)

// Extractor has a file system into which archives are extracted.
type Extractor struct {
	Log        I.Logger
	FileSystem *afero.Afero
}

// Unzip unzips from source into destination, preserving file modes and
// relative paths.
func (e *Extractor) Unzip(source, destination string) error {
	e.Log.Debugf("extracting %s into %s", source, destination)

	err := e.FileSystem.MkdirAll(destination, 0755)
	if err != nil {
		return CreateDirectoryError{err}
	}

	file, err := e.FileSystem.Open(source)
	if err != nil {
		return err
	}
	defer file.Close()

	fileStat, err := file.Stat()
	if err != nil {
		return err
	}

	reader, err := zip.NewReader(file, fileStat.Size())
	if err != nil {
		return OpenZipError{source, err}
	}

	for _, archived := range reader.File {
		err := e.unzipFile(destination, archived)
		if err != nil {
			return ExtractFileError{archived.Name, err}
		}
	}

	e.Log.Debug("extract was successful")
	return nil
}

func (e *Extractor) unzipFile(destination string, file *zip.File) error {
	contents, err := file.Open()
	if err != nil {
		return ExtractFileError{file.Name, err}
	}
	defer contents.Close()

	if file.FileInfo().IsDir() {
		return nil
	}

	savedLocation := path.Join(destination, file.Name)
	directory := path.Dir(savedLocation)
	err = e.FileSystem.MkdirAll(directory, 0755)
	if err != nil {
		return MakeDirectoryError{directory, err}
	}

	mode := file.Mode()
	newFile, err := e.FileSystem.OpenFile(savedLocation, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return OpenFileError{savedLocation, err}
	}
	defer newFile.Close()

	_, err = io.Copy(newFile, contents)
	if err != nil {
		return WriteFileError{savedLocation, err}
	}

	return nil
}

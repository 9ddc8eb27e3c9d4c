// Package repofetcher downloads and installs the frappe_docker deployment
// repository next to the working directory.
package repofetcher

import (
	"io"
	"net/http"
	"path/filepath"
	"time"

	I "github.com/compozed/stackdactyl/interfaces"
	"github.com/op/go-logging"
	"github.com/spf13/afero"
)

const (
	// DefaultURL is the archive of the frappe_docker default branch.
	DefaultURL = "https://github.com/frappe/frappe_docker/archive/refs/heads/main.zip"

	extractedDirName = "frappe_docker-main"
	repoDirName      = "frappe_docker"
)

type RepoFetcher struct {
	FileSystem *afero.Afero
	Extractor  I.Extractor
	Log        *logging.Logger

	// URL of the repository archive; DefaultURL when empty.
	URL string

	// BaseDir is the directory the repository is installed under.
	BaseDir string
}

// Fetch installs the deployment repository under BaseDir and returns its
// path. An existing repository is left alone unless forceRefresh is set, in
// which case it is deleted and downloaded again.
func (f *RepoFetcher) Fetch(forceRefresh bool) (string, error) {
	repoPath := filepath.Join(f.BaseDir, repoDirName)

	exists, err := f.FileSystem.DirExists(repoPath)
	if err != nil {
		return "", StatRepoError{repoPath, err}
	}

	if exists {
		if !forceRefresh {
			f.Log.Debugf("%s already present, skipping download", repoPath)
			return repoPath, nil
		}

		f.Log.Warningf("force refresh: removing %s", repoPath)
		if err := f.FileSystem.RemoveAll(repoPath); err != nil {
			return "", RemoveRepoError{repoPath, err}
		}
	}

	archivePath, err := f.download()
	if err != nil {
		return "", err
	}
	defer f.FileSystem.Remove(archivePath)

	err = f.Extractor.Unzip(archivePath, f.BaseDir)
	if err != nil {
		return "", UnzipError{err}
	}

	err = f.FileSystem.Rename(filepath.Join(f.BaseDir, extractedDirName), repoPath)
	if err != nil {
		return "", RenameError{extractedDirName, repoDirName, err}
	}

	f.Log.Infof("installed deployment repository at %s", repoPath)
	return repoPath, nil
}

func (f *RepoFetcher) download() (string, error) {
	url := f.URL
	if url == "" {
		url = DefaultURL
	}
	f.Log.Debugf("fetch URL: %s", url)

	archiveFile, err := f.FileSystem.TempFile("", "stackdactyl-")
	if err != nil {
		return "", CreateTempFileError{err}
	}
	defer archiveFile.Close()

	var client = &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			ResponseHeaderTimeout: 15 * time.Second,
		},
	}

	response, err := client.Get(url)
	if err != nil {
		f.FileSystem.Remove(archiveFile.Name())
		return "", GetUrlError{url, err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		f.FileSystem.Remove(archiveFile.Name())
		return "", GetStatusError{url, response.Status}
	}

	_, err = io.Copy(archiveFile, response.Body)
	if err != nil {
		f.FileSystem.Remove(archiveFile.Name())
		return "", WriteResponseError{err}
	}

	return archiveFile.Name(), nil
}

package deployer

import "fmt"

type FetchRepoError struct {
	Err error
}

func (e FetchRepoError) Error() string {
	return fmt.Sprintf("cannot fetch deployment repository: %s", e.Err)
}

type ReadEnvError struct {
	Path string
	Err  error
}

func (e ReadEnvError) Error() string {
	return fmt.Sprintf("cannot read environment file: %s: %s", e.Path, e.Err)
}

type WriteEnvError struct {
	Path string
	Err  error
}

func (e WriteEnvError) Error() string {
	return fmt.Sprintf("cannot write environment file: %s: %s", e.Path, e.Err)
}

type MissingEnvFileError struct {
	Project string
	Path    string
}

func (e MissingEnvFileError) Error() string {
	return fmt.Sprintf("environment file not found for project %q at %s: deploy the project first", e.Project, e.Path)
}

type RenderComposeError struct {
	Out string
	Err error
}

func (e RenderComposeError) Error() string {
	return fmt.Sprintf("cannot generate compose file: %s: %s", e.Err, e.Out)
}

type StartServicesError struct {
	Out string
	Err error
}

func (e StartServicesError) Error() string {
	return fmt.Sprintf("cannot start services: %s: %s", e.Err, e.Out)
}

type ProvisionSiteError struct {
	Site string
	Out  string
	Err  error
}

func (e ProvisionSiteError) Error() string {
	return fmt.Sprintf("cannot create site %s: %s: %s", e.Site, e.Err, e.Out)
}

type MigrateError struct {
	Out string
	Err error
}

func (e MigrateError) Error() string {
	return fmt.Sprintf("cannot migrate sites: %s: %s", e.Err, e.Out)
}

type RestartError struct {
	Out string
	Err error
}

func (e RestartError) Error() string {
	return fmt.Sprintf("cannot restart services: %s: %s", e.Err, e.Out)
}

type TeardownError struct {
	Out string
	Err error
}

func (e TeardownError) Error() string {
	return fmt.Sprintf("cannot stop services: %s: %s", e.Err, e.Out)
}

// Package deployer sequences the deployment workflow: fetch the repository,
// ensure env configuration, render the resolved compose file, start
// services and provision sites. Steps run in order and the first failure is
// terminal.
package deployer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/compozed/stackdactyl/config"
	I "github.com/compozed/stackdactyl/interfaces"
	S "github.com/compozed/stackdactyl/structs"
	"github.com/op/go-logging"
	"github.com/spf13/afero"
)

const (
	passwordLength = 16

	successfulDeploy = `Deployment successful.
Keep the generated credentials somewhere safe; they are reused on the next run.`
)

// credential keys inside the env and passwords files.
const (
	dbPasswordKey    = "DB_PASSWORD"
	adminPasswordKey = "SITE_ADMIN_PASS"
	sitesKey         = "SITES"
)

type Deployer struct {
	Config     config.Config
	Fetcher    I.Fetcher
	EnvManager I.EnvManager
	Courier    I.Courier
	Randomizer I.Randomizer
	FileSystem *afero.Afero
	Log        *logging.Logger
}

type credentials struct {
	dbPassword    string
	adminPassword string
}

// Deploy runs the full workflow. Progress is reported on out; any step
// error aborts the run.
func (d Deployer) Deploy(out io.Writer) error {
	repoPath, err := d.Fetcher.Fetch(d.Config.ForceRefresh)
	if err != nil {
		return FetchRepoError{err}
	}

	creds, sites, err := d.ensureCredentials(out)
	if err != nil {
		return err
	}

	err = d.writeEnv(repoPath, creds, sites)
	if err != nil {
		return err
	}

	err = d.startStack(out, repoPath)
	if err != nil {
		return err
	}

	for _, site := range sites {
		fmt.Fprintf(out, "Creating site %s\n", site)
		output, err := d.Courier.NewSite(d.Config.Project, site, creds.dbPassword, creds.adminPassword, d.Config.Apps)
		if err != nil {
			return ProvisionSiteError{site, string(output), err}
		}
	}

	fmt.Fprintln(out, successfulDeploy)
	fmt.Fprintf(out, "MariaDB root password: %s\n", creds.dbPassword)
	fmt.Fprintf(out, "Administrator password: %s\n", creds.adminPassword)
	return nil
}

// Upgrade re-renders configuration with the stored credentials, restarts
// the stack and migrates every site. It refuses to run without an existing
// environment file.
func (d Deployer) Upgrade(out io.Writer) error {
	repoPath, err := d.Fetcher.Fetch(d.Config.ForceRefresh)
	if err != nil {
		return FetchRepoError{err}
	}

	exists, err := d.FileSystem.Exists(d.Config.EnvFilePath)
	if err != nil {
		return ReadEnvError{d.Config.EnvFilePath, err}
	}
	if !exists {
		return MissingEnvFileError{d.Config.Project, d.Config.EnvFilePath}
	}

	vars, err := d.EnvManager.Read(d.Config.EnvFilePath)
	if err != nil {
		return ReadEnvError{d.Config.EnvFilePath, err}
	}
	creds := credentials{
		dbPassword:    vars[dbPasswordKey],
		adminPassword: vars[adminPasswordKey],
	}

	err = d.writeEnv(repoPath, creds, sitesFromEnv(vars, d.Config.Sites))
	if err != nil {
		return err
	}

	err = d.startStack(out, repoPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Migrating sites")
	output, err := d.Courier.MigrateAll(d.Config.Project)
	if err != nil {
		return MigrateError{string(output), err}
	}

	fmt.Fprintln(out, "Upgrade successful.")
	return nil
}

// Restart restarts all running services of the project.
func (d Deployer) Restart(out io.Writer) error {
	output, err := d.Courier.Restart(d.Config.Project, d.Config.ComposeFilePath)
	if err != nil {
		return RestartError{string(output), err}
	}
	fmt.Fprintln(out, "Services restarted.")
	return nil
}

// Teardown stops and removes the containers. With removeVolumes the named
// volumes are deleted as well, destroying all data.
func (d Deployer) Teardown(out io.Writer, removeVolumes bool) error {
	output, err := d.Courier.Down(d.Config.Project, d.Config.ComposeFilePath, removeVolumes)
	if err != nil {
		return TeardownError{string(output), err}
	}
	if removeVolumes {
		fmt.Fprintln(out, "Services stopped and data volumes removed.")
	} else {
		fmt.Fprintln(out, "Services stopped. Data is preserved in the volumes.")
	}
	return nil
}

// ensureCredentials reuses credentials from a prior run when the env file
// exists, otherwise generates new ones and saves them to the passwords
// file.
func (d Deployer) ensureCredentials(out io.Writer) (credentials, []string, error) {
	exists, err := d.FileSystem.Exists(d.Config.EnvFilePath)
	if err != nil {
		return credentials{}, nil, ReadEnvError{d.Config.EnvFilePath, err}
	}

	if exists {
		d.Log.Warningf("existing environment file found at %s, reusing credentials", d.Config.EnvFilePath)
		vars, err := d.EnvManager.Read(d.Config.EnvFilePath)
		if err != nil {
			return credentials{}, nil, ReadEnvError{d.Config.EnvFilePath, err}
		}

		creds := credentials{
			dbPassword:    vars[dbPasswordKey],
			adminPassword: vars[adminPasswordKey],
		}
		if creds.dbPassword == "" {
			creds.dbPassword = d.Randomizer.HexString(passwordLength)
		}
		if creds.adminPassword == "" {
			creds.adminPassword = d.Randomizer.HexString(passwordLength)
		}
		return creds, sitesFromEnv(vars, d.Config.Sites), nil
	}

	d.Log.Info("generating new credentials")
	creds := credentials{
		dbPassword:    d.Randomizer.HexString(passwordLength),
		adminPassword: d.Randomizer.HexString(passwordLength),
	}

	err = d.EnvManager.Write(d.Config.PasswordsFilePath, []S.EnvPair{
		{Key: "ADMINISTRATOR_PASSWORD", Value: creds.adminPassword},
		{Key: "MARIADB_ROOT_PASSWORD", Value: creds.dbPassword},
	})
	if err != nil {
		return credentials{}, nil, WriteEnvError{d.Config.PasswordsFilePath, err}
	}

	fmt.Fprintf(out, "Passwords saved to %s\n", d.Config.PasswordsFilePath)
	return creds, d.Config.Sites, nil
}

// writeEnv serializes the full environment set for the compose stack.
func (d Deployer) writeEnv(repoPath string, creds credentials, sites []string) error {
	version := d.Config.Version
	if version == "" {
		version = d.defaultVersion(repoPath)
	}

	quoted := make([]string, len(sites))
	for i, site := range sites {
		quoted[i] = "`" + site + "`"
	}

	pairs := []S.EnvPair{
		{Key: "ERPNEXT_VERSION", Value: version},
		{Key: dbPasswordKey, Value: creds.dbPassword},
		{Key: sitesKey, Value: strings.Join(quoted, ",")},
		{Key: "LETSENCRYPT_EMAIL", Value: d.Config.Email},
		{Key: adminPasswordKey, Value: creds.adminPassword},
		{Key: "BACKUP_CRONSTRING", Value: `"` + d.Config.BackupSchedule + `"`},
		{Key: "DB_HOST", Value: "db"},
		{Key: "DB_PORT", Value: "3306"},
		{Key: "REDIS_CACHE", Value: "redis-cache:6379"},
		{Key: "REDIS_QUEUE", Value: "redis-queue:6379"},
		{Key: "REDIS_SOCKETIO", Value: "redis-socketio:6379"},
		{Key: "PULL_POLICY", Value: "missing"},
	}

	if !d.Config.HTTPS && d.Config.HTTPPort != "" {
		pairs = append(pairs, S.EnvPair{Key: "HTTP_PUBLISH_PORT", Value: d.Config.HTTPPort})
	}
	if d.Config.Image != "" {
		pairs = append(pairs, S.EnvPair{Key: "CUSTOM_IMAGE", Value: d.Config.Image})
		pairs = append(pairs, S.EnvPair{Key: "CUSTOM_TAG", Value: version})
	}

	err := d.EnvManager.Write(d.Config.EnvFilePath, pairs)
	if err != nil {
		return WriteEnvError{d.Config.EnvFilePath, err}
	}

	d.Log.Infof("configuration written to %s", d.Config.EnvFilePath)
	return nil
}

// defaultVersion takes ERPNEXT_VERSION from the repository's example.env,
// falling back to latest.
func (d Deployer) defaultVersion(repoPath string) string {
	examplePath := filepath.Join(repoPath, "example.env")
	exists, err := d.FileSystem.Exists(examplePath)
	if err != nil || !exists {
		return "latest"
	}

	vars, err := d.EnvManager.Read(examplePath)
	if err != nil {
		d.Log.Warningf("cannot read %s: %s", examplePath, err)
		return "latest"
	}

	if version := vars["ERPNEXT_VERSION"]; version != "" {
		return version
	}
	return "latest"
}

func (d Deployer) startStack(out io.Writer, repoPath string) error {
	fmt.Fprintln(out, "Generating compose file")
	output, err := d.Courier.Render(d.Config.Project, repoPath, d.Config.EnvFilePath, d.Config.ComposeFilePath, d.Config.HTTPS)
	if err != nil {
		return RenderComposeError{string(output), err}
	}
	d.Log.Infof("compose file generated at %s", d.Config.ComposeFilePath)

	fmt.Fprintln(out, "Starting services")
	output, err = d.Courier.Up(d.Config.Project, d.Config.ComposeFilePath)
	if err != nil {
		return StartServicesError{string(output), err}
	}

	return nil
}

// sitesFromEnv recovers the site list stored in the env file, falling back
// to the configured sites.
func sitesFromEnv(vars map[string]string, fallback []string) []string {
	stored := strings.ReplaceAll(vars[sitesKey], "`", "")
	if stored == "" {
		return fallback
	}
	return strings.Split(stored, ",")
}

// Package compose interfaces with the Executor to run specific docker
// compose and bench commands.
package compose

import I "github.com/compozed/stackdactyl/interfaces"

// backendService is the compose service that the bench CLI lives in.
const backendService = "backend"

var baseOverlays = []string{
	"compose.yaml",
	"overrides/compose.mariadb.yaml",
	"overrides/compose.redis.yaml",
}

const (
	httpsOverlay   = "overrides/compose.https.yaml"
	noProxyOverlay = "overrides/compose.noproxy.yaml"
	backupOverlay  = "overrides/compose.backup-cron.yaml"
)

type Courier struct {
	Executor I.Executor
}

// Render merges the base compose file with the overlay files into one
// resolved file at composeFilePath. The https flag selects exactly one of
// the https and no-proxy overlays.
//
// Returns the captured standard error.
func (c Courier) Render(project, repoPath, envFilePath, composeFilePath string, https bool) ([]byte, error) {
	proxyOverlay := noProxyOverlay
	if https {
		proxyOverlay = httpsOverlay
	}

	args := []string{"compose", "--project-name", project, "--env-file", envFilePath}
	for _, overlay := range baseOverlays {
		args = append(args, "-f", overlay)
	}
	args = append(args, "-f", proxyOverlay, "-f", backupOverlay, "config")

	return c.Executor.ExecuteToFile(composeFilePath, repoPath, args...)
}

// Up runs the docker compose up command.
//
// Returns the combined standard output and standard error.
func (c Courier) Up(project, composeFilePath string) ([]byte, error) {
	return c.Executor.Execute("compose", "-p", project, "-f", composeFilePath,
		"up", "-d", "--remove-orphans", "--force-recreate")
}

// Down runs the docker compose down command. With removeVolumes the named
// volumes are deleted as well, which destroys all data.
//
// Returns the combined standard output and standard error.
func (c Courier) Down(project, composeFilePath string, removeVolumes bool) ([]byte, error) {
	args := []string{"compose", "-p", project, "-f", composeFilePath, "down"}
	if removeVolumes {
		args = append(args, "-v")
	}
	return c.Executor.Execute(args...)
}

// Restart runs the docker compose restart command.
//
// Returns the combined standard output and standard error.
func (c Courier) Restart(project, composeFilePath string) ([]byte, error) {
	return c.Executor.Execute("compose", "-p", project, "-f", composeFilePath, "restart")
}

// Exec runs a one-off command inside the running backend service.
//
// Returns the combined standard output and standard error.
func (c Courier) Exec(project string, command ...string) ([]byte, error) {
	args := append([]string{"compose", "-p", project, "exec", backendService}, command...)
	return c.Executor.Execute(args...)
}

// NewSite runs bench new-site inside the backend service, installing the
// given apps on the site.
//
// Returns the combined standard output and standard error.
func (c Courier) NewSite(project, site, dbPassword, adminPassword string, apps []string) ([]byte, error) {
	command := []string{
		"bench", "new-site", site,
		"--no-mariadb-socket",
		"--db-root-password=" + dbPassword,
		"--admin-password=" + adminPassword,
	}
	for _, app := range apps {
		command = append(command, "--install-app", app)
	}
	return c.Exec(project, command...)
}

// MigrateAll runs bench migrate for every site inside the backend service.
//
// Returns the combined standard output and standard error.
func (c Courier) MigrateAll(project string) ([]byte, error) {
	return c.Exec(project, "bench", "--site", "all", "migrate")
}

package interfaces

// Courier interface.
type Courier interface {
	Render(project, repoPath, envFilePath, composeFilePath string, https bool) ([]byte, error)
	Up(project, composeFilePath string) ([]byte, error)
	Down(project, composeFilePath string, removeVolumes bool) ([]byte, error)
	Restart(project, composeFilePath string) ([]byte, error)
	Exec(project string, command ...string) ([]byte, error)
	NewSite(project, site, dbPassword, adminPassword string, apps []string) ([]byte, error)
	MigrateAll(project string) ([]byte, error)
}

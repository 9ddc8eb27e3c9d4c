package mocks

// Courier handmade mock for tests.
type Courier struct {
	RenderCall struct {
		TimesCalled int
		Received    struct {
			Project         string
			RepoPath        string
			EnvFilePath     string
			ComposeFilePath string
			HTTPS           bool
		}
		Returns struct {
			Output []byte
			Error  error
		}
	}

	UpCall struct {
		TimesCalled int
		Received    struct {
			Project         string
			ComposeFilePath string
		}
		Returns struct {
			Output []byte
			Error  error
		}
	}

	DownCall struct {
		TimesCalled int
		Received    struct {
			Project         string
			ComposeFilePath string
			RemoveVolumes   bool
		}
		Returns struct {
			Output []byte
			Error  error
		}
	}

	RestartCall struct {
		TimesCalled int
		Received    struct {
			Project         string
			ComposeFilePath string
		}
		Returns struct {
			Output []byte
			Error  error
		}
	}

	ExecCall struct {
		TimesCalled int
		Received    struct {
			Project string
			Command []string
		}
		Returns struct {
			Output []byte
			Error  error
		}
	}

	NewSiteCall struct {
		TimesCalled int
		Received    struct {
			Project       string
			Sites         []string
			DBPassword    string
			AdminPassword string
			Apps          []string
		}
		Returns struct {
			Output []byte
			Error  error
		}
	}

	MigrateAllCall struct {
		TimesCalled int
		Received    struct {
			Project string
		}
		Returns struct {
			Output []byte
			Error  error
		}
	}
}

// Render mock method.
func (c *Courier) Render(project, repoPath, envFilePath, composeFilePath string, https bool) ([]byte, error) {
	c.RenderCall.TimesCalled++
	c.RenderCall.Received.Project = project
	c.RenderCall.Received.RepoPath = repoPath
	c.RenderCall.Received.EnvFilePath = envFilePath
	c.RenderCall.Received.ComposeFilePath = composeFilePath
	c.RenderCall.Received.HTTPS = https

	return c.RenderCall.Returns.Output, c.RenderCall.Returns.Error
}

// Up mock method.
func (c *Courier) Up(project, composeFilePath string) ([]byte, error) {
	c.UpCall.TimesCalled++
	c.UpCall.Received.Project = project
	c.UpCall.Received.ComposeFilePath = composeFilePath

	return c.UpCall.Returns.Output, c.UpCall.Returns.Error
}

// Down mock method.
func (c *Courier) Down(project, composeFilePath string, removeVolumes bool) ([]byte, error) {
	c.DownCall.TimesCalled++
	c.DownCall.Received.Project = project
	c.DownCall.Received.ComposeFilePath = composeFilePath
	c.DownCall.Received.RemoveVolumes = removeVolumes

	return c.DownCall.Returns.Output, c.DownCall.Returns.Error
}

// Restart mock method.
func (c *Courier) Restart(project, composeFilePath string) ([]byte, error) {
	c.RestartCall.TimesCalled++
	c.RestartCall.Received.Project = project
	c.RestartCall.Received.ComposeFilePath = composeFilePath

	return c.RestartCall.Returns.Output, c.RestartCall.Returns.Error
}

// Exec mock method.
func (c *Courier) Exec(project string, command ...string) ([]byte, error) {
	c.ExecCall.TimesCalled++
	c.ExecCall.Received.Project = project
	c.ExecCall.Received.Command = command

	return c.ExecCall.Returns.Output, c.ExecCall.Returns.Error
}

// NewSite mock method. Sites accumulates across calls so tests can assert
// per-site provisioning.
func (c *Courier) NewSite(project, site, dbPassword, adminPassword string, apps []string) ([]byte, error) {
	c.NewSiteCall.TimesCalled++
	c.NewSiteCall.Received.Project = project
	c.NewSiteCall.Received.Sites = append(c.NewSiteCall.Received.Sites, site)
	c.NewSiteCall.Received.DBPassword = dbPassword
	c.NewSiteCall.Received.AdminPassword = adminPassword
	c.NewSiteCall.Received.Apps = apps

	return c.NewSiteCall.Returns.Output, c.NewSiteCall.Returns.Error
}

// MigrateAll mock method.
func (c *Courier) MigrateAll(project string) ([]byte, error) {
	c.MigrateAllCall.TimesCalled++
	c.MigrateAllCall.Received.Project = project

	return c.MigrateAllCall.Returns.Output, c.MigrateAllCall.Returns.Error
}

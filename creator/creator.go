// Package creator creates dependencies upon initialization.
package creator

import (
	"io"
	"os"

	"github.com/compozed/stackdactyl/compose"
	"github.com/compozed/stackdactyl/compose/executor"
	"github.com/compozed/stackdactyl/config"
	"github.com/compozed/stackdactyl/deployer"
	"github.com/compozed/stackdactyl/envfile"
	I "github.com/compozed/stackdactyl/interfaces"
	"github.com/compozed/stackdactyl/logger"
	"github.com/compozed/stackdactyl/randomizer"
	"github.com/compozed/stackdactyl/repofetcher"
	"github.com/compozed/stackdactyl/repofetcher/extractor"
	"github.com/op/go-logging"
	"github.com/spf13/afero"
)

// Creator has a config, logger and file system for creating dependencies.
type Creator struct {
	config     config.Config
	logger     *logging.Logger
	writer     io.Writer
	fileSystem *afero.Afero
}

// Default returns a default Creator and an error.
func Default() (Creator, error) {
	cfg, err := config.Default(os.Getenv)
	if err != nil {
		return Creator{}, err
	}
	return createCreator(logging.DEBUG, cfg)
}

// Custom returns a custom Creator with an error.
func Custom(level string, stackFilename string, getenv func(string) string) (Creator, error) {
	l, err := getLevel(level)
	if err != nil {
		return Creator{}, err
	}

	cfg, err := config.Custom(getenv, stackFilename)
	if err != nil {
		return Creator{}, err
	}
	return createCreator(l, cfg)
}

// Env returns a Creator configured from environment variables alone, for
// runs without a stack file.
func Env(level string, getenv func(string) string) (Creator, error) {
	l, err := getLevel(level)
	if err != nil {
		return Creator{}, err
	}

	cfg, err := config.Default(getenv)
	if err != nil {
		return Creator{}, err
	}
	return createCreator(l, cfg)
}

// CreateDeployer returns a Deployer with all of its dependencies
// constructed.
func (c Creator) CreateDeployer() I.Deployer {
	return deployer.Deployer{
		Config:     c.config,
		Fetcher:    c.CreateFetcher(),
		EnvManager: c.CreateEnvManager(),
		Courier:    c.CreateCourier(),
		Randomizer: randomizer.Randomizer{},
		FileSystem: c.fileSystem,
		Log:        c.logger,
	}
}

// CreateCourier returns a Courier backed by a docker Executor.
func (c Creator) CreateCourier() I.Courier {
	return compose.Courier{
		Executor: executor.New(c.fileSystem),
	}
}

// CreateFetcher returns a Fetcher for the deployment repository.
func (c Creator) CreateFetcher() I.Fetcher {
	return &repofetcher.RepoFetcher{
		FileSystem: c.fileSystem,
		Extractor:  c.CreateExtractor(),
		Log:        c.logger,
		BaseDir:    c.config.RepoBaseDir,
	}
}

// CreateExtractor returns an Extractor over the Creator's file system.
func (c Creator) CreateExtractor() I.Extractor {
	return &extractor.Extractor{
		Log:        c.logger,
		FileSystem: c.fileSystem,
	}
}

// CreateEnvManager returns an EnvManager over the Creator's file system.
func (c Creator) CreateEnvManager() I.EnvManager {
	return envfile.Manager{
		FileSystem: c.fileSystem,
		Log:        c.logger,
	}
}

// CreateConfig returns the Creator's config.
func (c Creator) CreateConfig() config.Config {
	return c.config
}

// CreateLogger returns the Creator's logger.
func (c Creator) CreateLogger() *logging.Logger {
	return c.logger
}

// CreateWriter returns the writer progress output goes to.
func (c Creator) CreateWriter() io.Writer {
	return c.writer
}

func createCreator(l logging.Level, cfg config.Config) (Creator, error) {
	return Creator{
		config:     cfg,
		logger:     logger.DefaultLogger(os.Stdout, l, "stackdactyl"),
		writer:     os.Stdout,
		fileSystem: &afero.Afero{Fs: afero.NewOsFs()},
	}, nil
}

func getLevel(level string) (logging.Level, error) {
	if level != "" {
		l, err := logging.LogLevel(level)
		if err != nil {
			return 0, err
		}
		return l, nil
	}

	return logging.INFO, nil
}

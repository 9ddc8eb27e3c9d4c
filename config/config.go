// Package config holds all specified configuration information aggregated
// from across all possible inputs (stack yaml file and user-defined
// environment variables).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudfoundry-incubator/candiedyaml"
	"github.com/compozed/stackdactyl/geterrors"
	"github.com/go-errors/errors"
)

const (
	cannotParseYamlFile = "cannot parse yaml file"
	emailNotAllowed     = "example.com email addresses are not accepted for Let's Encrypt certificates"

	defaultProject        = "frappe"
	defaultSite           = "site1.localhost"
	defaultHTTPPort       = "8080"
	defaultBackupSchedule = "@every 6h"
)

// Config describes one deployment run. Immutable after construction; the
// deployer owns it for the duration of the run.
type Config struct {
	Project        string
	Sites          []string
	Email          string
	Apps           []string
	BackupSchedule string
	Version        string
	Image          string
	HTTPS          bool
	HTTPPort       string
	ForceRefresh   bool

	// Derived paths.
	RepoBaseDir       string
	EnvFilePath       string
	ComposeFilePath   string
	PasswordsFilePath string
}

type stackYaml struct {
	Project        string   `yaml:"project"`
	Sites          []string `yaml:"sites,flow"`
	Apps           []string `yaml:"apps,flow"`
	Email          string   `yaml:"letsencrypt_email"`
	NoSSL          bool     `yaml:"no_ssl"`
	HTTPPort       string   `yaml:"http_port"`
	BackupSchedule string   `yaml:"backup_schedule"`
	Image          string   `yaml:"image"`
	Version        string   `yaml:"version"`
	ForceRefresh   bool     `yaml:"force_refresh"`
}

// Default returns a new Config struct built from environment variables
// alone.
func Default(getenv func(string) string) (Config, error) {
	return build(getenv, stackYaml{})
}

// Custom returns a new Config struct with information from environment
// variables and a stack file.
func Custom(getenv func(string) string, stackFilename string) (Config, error) {
	stack, err := getStackFromFile(stackFilename)
	if err != nil {
		return Config{}, errors.New(err)
	}
	return build(getenv, stack)
}

func build(getenv func(string) string, stack stackYaml) (Config, error) {
	getter := geterrors.WrapFunc(getenv)

	home := getter.Get("HOME")
	if err := getter.Err("missing environment variables"); err != nil {
		return Config{}, errors.New(err)
	}

	project := stack.Project
	if project == "" {
		project = getter.GetOr("STACKDACTYL_PROJECT", defaultProject)
	}

	sites := stack.Sites
	if len(sites) == 0 {
		sites = []string{defaultSite}
	}

	email := stack.Email
	if email == "" {
		email = getter.GetOr("STACKDACTYL_LETSENCRYPT_EMAIL", "")
	}

	https := !stack.NoSSL
	if getter.GetOr("STACKDACTYL_NO_SSL", "") == "true" {
		https = false
	}

	if https && strings.Contains(email, "example.com") {
		return Config{}, errors.New(emailNotAllowed)
	}

	httpPort := stack.HTTPPort
	if httpPort == "" {
		httpPort = getter.GetOr("STACKDACTYL_HTTP_PORT", defaultHTTPPort)
	}

	backupSchedule := stack.BackupSchedule
	if backupSchedule == "" {
		backupSchedule = defaultBackupSchedule
	}

	forceRefresh := stack.ForceRefresh
	if getter.GetOr("STACKDACTYL_FORCE_PULL", "") == "true" {
		forceRefresh = true
	}

	config := Config{
		Project:        project,
		Sites:          sites,
		Email:          email,
		Apps:           stack.Apps,
		BackupSchedule: backupSchedule,
		Version:        stack.Version,
		Image:          stack.Image,
		HTTPS:          https,
		HTTPPort:       httpPort,
		ForceRefresh:   forceRefresh,

		RepoBaseDir:       getter.GetOr("PWD", "."),
		EnvFilePath:       filepath.Join(home, project+".env"),
		ComposeFilePath:   filepath.Join(home, project+"-compose.yml"),
		PasswordsFilePath: filepath.Join(home, project+"-passwords.txt"),
	}
	return config, nil
}

func getStackFromFile(filename string) (stackYaml, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return stackYaml{}, errors.New(err)
	}

	var stack stackYaml
	err = candiedyaml.Unmarshal(file, &stack)
	if err != nil {
		return stackYaml{}, errors.Errorf("%s: %s", cannotParseYamlFile, err)
	}

	return stack, nil
}

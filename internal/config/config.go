package config

import (
	"fmt"
	"os"
	"path/filepath"

	"reponame/internal/logging"
	"reponame/pkg/fileops"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const AppName = "reponame" // application name used for config directory

// DefaultRemoteName is used when no remote is configured explicitly.
const DefaultRemoteName = "origin"

// Settings holds the persisted user configuration.
//
// Secrets never live here: the GitHub token is kept in the OS credential
// store (see credentials.go). The settings file only carries preferences.
type Settings struct {
	DefaultRemote string `yaml:"default_remote"`
}

// Path returns the standard config file location for the current platform.
func Path() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load reads settings from the standard location. A missing file is not an
// error; it yields the defaults, since the tool is expected to work without
// any prior setup.
func Load() (*Settings, error) {
	return LoadFrom(Path())
}

// LoadFrom reads settings from a specific path, falling back to defaults
// when the file does not exist.
func LoadFrom(path string) (*Settings, error) {
	logging.Debug("Loading settings", "path", path)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var s Settings
	if err := yaml.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if s.DefaultRemote == "" {
		s.DefaultRemote = DefaultRemoteName
	}
	return &s, nil
}

// Default returns a Settings with sensible defaults.
func Default() *Settings {
	return &Settings{DefaultRemote: DefaultRemoteName}
}

// Save writes the settings to the standard location.
func (s *Settings) Save() error {
	return s.SaveTo(Path())
}

// SaveTo writes the settings to a specific path, creating the directory if
// needed. The file is restricted to the owner even though it holds no
// secrets, matching the rest of the config directory.
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := fileops.SetSecurePermissions(path); err != nil {
		return err
	}

	logging.Debug("Settings saved", "path", path, "default_remote", s.DefaultRemote)
	return nil
}

// SetDefaultRemote updates the default remote and persists the change.
func (s *Settings) SetDefaultRemote(remote string) error {
	if remote == "" {
		return fmt.Errorf("remote name cannot be empty")
	}
	s.DefaultRemote = remote
	return s.Save()
}

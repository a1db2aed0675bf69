package config

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/entities.yaml defaults/weapons.yaml
var defaultsFS embed.FS

// GameConfig holds all loaded configurations
type GameConfig struct {
	Entities *EntitiesConfig
	Weapons  *WeaponsConfig
}

// Loader loads game configuration from YAML files using the fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a config loader reading from a directory path.
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a config loader reading from an fs.FS.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewDefaultLoader creates a loader over the embedded default configs.
func NewDefaultLoader() *Loader {
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return &Loader{fsys: sub}
}

// LoadEntities loads entities.yaml
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.yaml: %w", err)
	}

	var cfg EntitiesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadWeapons loads weapons.yaml
func (l *Loader) LoadWeapons() (*WeaponsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "weapons.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read weapons.yaml: %w", err)
	}

	var cfg WeaponsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse weapons.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAll loads all configurations (entities, weapons)
func (l *Loader) LoadAll() (*GameConfig, error) {
	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	weapons, err := l.LoadWeapons()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Entities: entities,
		Weapons:  weapons,
	}, nil
}

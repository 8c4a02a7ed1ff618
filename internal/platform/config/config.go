package config

import (
	"fmt"
	"path/filepath"
)

// Config describes the on-disk layout rooted at the user's data directory.
type Config struct {
	DataPath    string
	StorePath   string // one JSON file per logical key
	DBPath      string // sqlite read-model index
	NotesPath   string // markdown notes for archived journeys
	PluginsPath string // insight plugin manifests and binaries
}

func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	return Config{
		DataPath:    dataPath,
		StorePath:   filepath.Join(dataPath, "store"),
		DBPath:      filepath.Join(dataPath, "index.db"),
		NotesPath:   filepath.Join(dataPath, "notes"),
		PluginsPath: filepath.Join(dataPath, "plugins"),
	}, nil
}

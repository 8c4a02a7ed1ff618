package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"inward/internal/modules/plugin/domain"
	pluginout "inward/internal/modules/plugin/port/out"
)

const manifestFile = "plugins.json"

// FileManifestStore reads insight plugin manifests from plugins.json in the
// plugins directory. Relative binary paths resolve against that directory,
// so a plugin ships as a subfolder holding its binary next to its manifest
// entry.
type FileManifestStore struct {
	dir string
}

func NewFileManifestStore(dir string) pluginout.ManifestStore {
	return &FileManifestStore{dir: dir}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	f, err := os.Open(filepath.Join(s.dir, manifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("open plugin manifests: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	manifests := []domain.Manifest{}
	if err := dec.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode plugin manifests: %w", err)
	}
	for i, m := range manifests {
		if m.Binary != "" && !filepath.IsAbs(m.Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(s.dir, m.Binary))
		}
	}
	return manifests, nil
}

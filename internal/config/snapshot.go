package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nvquang/vnpit/internal/compare"
	"github.com/nvquang/vnpit/internal/domain"
)

// snapshotVersion guards against loading snapshots written by an
// incompatible release.
const snapshotVersion = 1

// Snapshot is a named, versioned aggregate of calculator inputs. It is a
// plain-data record: saving replaces the whole file, there is no partial
// mutation, and deleting it is explicit.
type Snapshot struct {
	Version int       `yaml:"version"`
	Name    string    `yaml:"name"`
	SavedAt time.Time `yaml:"saved_at"`

	Salary   *domain.SalaryInput    `yaml:"salary,omitempty"`
	Mortgage *domain.MortgageInput  `yaml:"mortgage,omitempty"`
	Compare  *compare.TreatmentInput `yaml:"compare,omitempty"`
	Rental   *domain.RentalInput    `yaml:"rental,omitempty"`
	Business *domain.BusinessInput  `yaml:"business,omitempty"`
}

// SnapshotStore persists snapshots as YAML files in one directory.
type SnapshotStore struct {
	Dir string
}

// NewSnapshotStore creates a store rooted at dir, creating it if needed.
func NewSnapshotStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}
	return &SnapshotStore{Dir: dir}, nil
}

func (st *SnapshotStore) path(name string) string {
	return filepath.Join(st.Dir, name+".yaml")
}

// Save writes a snapshot, replacing any previous one with the same name.
func (st *SnapshotStore) Save(snap Snapshot) error {
	if strings.TrimSpace(snap.Name) == "" {
		return fmt.Errorf("snapshot name is required")
	}
	if strings.ContainsAny(snap.Name, `/\`) {
		return fmt.Errorf("snapshot name must not contain path separators")
	}
	snap.Version = snapshotVersion
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now().UTC()
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(st.path(snap.Name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", snap.Name, err)
	}
	return nil
}

// Load reads a snapshot by name.
func (st *SnapshotStore) Load(name string) (*Snapshot, error) {
	data, err := os.ReadFile(st.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", name, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot %s has unsupported version %d", name, snap.Version)
	}
	return &snap, nil
}

// List returns the stored snapshot names, sorted.
func (st *SnapshotStore) List() ([]string, error) {
	entries, err := os.ReadDir(st.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a snapshot by name.
func (st *SnapshotStore) Delete(name string) error {
	if err := os.Remove(st.path(name)); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", name, err)
	}
	return nil
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/optivision/optivision/internal/model"
)

// SnapshotName is the fixed key the blob is stored under, regardless of
// backend. The blob carries the three collections only; UI-transient
// state is never persisted.
const SnapshotName = "optical-store-storage"

type Snapshot struct {
	Customers []model.Customer      `json:"customers"`
	Orders    []model.Order         `json:"orders"`
	Inventory []model.InventoryItem `json:"inventory"`
}

// Persister loads and saves the snapshot blob. Load returns ok=false when
// no snapshot exists yet, which is not an error.
type Persister interface {
	Load(ctx context.Context) (Snapshot, bool, error)
	Save(ctx context.Context, snap Snapshot) error
}

// FilePersister keeps the blob as a JSON file on local disk.
type FilePersister struct {
	Path string
}

func (p *FilePersister) Load(ctx context.Context) (Snapshot, bool, error) {
	b, err := os.ReadFile(p.Path)
	if os.IsNotExist(err) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, true, nil
}

// Save writes to a temp file and renames, so a crash mid-write never
// leaves a truncated blob behind.
func (p *FilePersister) Save(ctx context.Context, snap Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	dir := filepath.Dir(p.Path)
	tmp, err := os.CreateTemp(dir, SnapshotName+"-*")
	if err != nil {
		return fmt.Errorf("temp snapshot: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

package systems

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// SavedSettings represents the runner settings stored on disk
type SavedSettings struct {
	Scale      int    `json:"scale"`
	Fullscreen bool   `json:"fullscreen"`
	LastLevel  string `json:"lastLevel"`
}

// itemStore is the part of gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Persistence reads and writes runner state. A zero Persistence (no store)
// loads nothing and saves nothing.
type Persistence struct {
	store itemStore
}

// InitPersistence opens the per-user data directory for appName.
func InitPersistence(appName string) (*Persistence, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return &Persistence{}, fmt.Errorf("open persistence: %w", err)
	}
	return &Persistence{store: m}, nil
}

// LoadSettings returns nil without error when nothing was saved yet.
func (p *Persistence) LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := p.load("settings", &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func (p *Persistence) SaveSettings(s *SavedSettings) error {
	return p.save("settings", s)
}

func (p *Persistence) load(key string, v any) (bool, error) {
	if p == nil || p.store == nil {
		return false, nil
	}
	data, err := p.store.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func (p *Persistence) save(key string, v any) error {
	if p == nil || p.store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := p.store.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

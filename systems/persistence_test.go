package systems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items map[string][]byte
	err   error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.items[key] = data
	return nil
}

func TestPersistenceSettingsRoundTrip(t *testing.T) {
	p := &Persistence{store: &memStore{items: map[string][]byte{}}}

	saved, err := p.LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, saved, "nothing saved yet")

	require.NoError(t, p.SaveSettings(&SavedSettings{Scale: 2, LastLevel: "0"}))
	saved, err = p.LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 2, saved.Scale)
	assert.Equal(t, "0", saved.LastLevel)
}

func TestPersistenceWithoutStore(t *testing.T) {
	var p *Persistence
	saved, err := p.LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, p.SaveSettings(&SavedSettings{Scale: 3}))
}

func TestPersistenceWrapsStoreErrors(t *testing.T) {
	boom := errors.New("disk full")
	p := &Persistence{store: &memStore{items: map[string][]byte{}, err: boom}}

	err := p.SaveSettings(&SavedSettings{})
	assert.ErrorIs(t, err, boom)
	_, err = p.LoadSettings()
	assert.ErrorIs(t, err, boom)
}

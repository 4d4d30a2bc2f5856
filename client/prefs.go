package client

import (
	"encoding/json"
	"os"
)

// FilterPrefKey is the fixed key the console stores its list filter
// under, JSON-encoded like a browser localStorage value.
const FilterPrefKey = "fundsConsoleFilter"

const defaultFilter = "all"

// PrefStore persists console preferences as a JSON object in one file.
// Corrupted or missing data falls back to defaults; this is the only
// error the client swallows.
type PrefStore struct {
	path string
}

func NewPrefStore(path string) *PrefStore {
	return &PrefStore{path: path}
}

func (p *PrefStore) Filter() string {
	prefs, err := p.read()
	if err != nil {
		return defaultFilter
	}
	raw, ok := prefs[FilterPrefKey]
	if !ok {
		return defaultFilter
	}

	var filter string
	if err := json.Unmarshal(raw, &filter); err != nil || filter == "" {
		return defaultFilter
	}
	return filter
}

func (p *PrefStore) SetFilter(filter string) error {
	prefs, err := p.read()
	if err != nil {
		prefs = map[string]json.RawMessage{}
	}

	raw, err := json.Marshal(filter)
	if err != nil {
		return err
	}
	prefs[FilterPrefKey] = raw

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o600)
}

func (p *PrefStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, err
	}
	prefs := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

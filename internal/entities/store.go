package entities

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Record holds the raw fields of a unit or tenant as loaded from YAML.
type Record map[string]any

type document struct {
	Units   map[string]Record `yaml:"units"`
	Tenants map[string]Record `yaml:"tenants"`
}

// Store is the building directory backed by a single YAML file.
// Password changes are written through: the whole document is serialized
// back to the file and re-imported immediately.
type Store struct {
	path    string
	mutex   sync.Mutex
	units   map[string]Record
	tenants map[string]Record
}

func Load(path string) (*Store, error) {
	s := &Store{path: path}

	err := s.importData()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) importData() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read entities: %w", err)
	}

	var doc document

	err = yaml.Unmarshal(b, &doc)
	if err != nil {
		return fmt.Errorf("read entities at %s: %w", s.path, err)
	}

	s.units = doc.Units
	s.tenants = doc.Tenants

	return nil
}

// Sync serializes the whole document back to the file and re-imports it.
// There is no diffing and no transactional atomicity.
func (s *Store) Sync() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.sync()
}

func (s *Store) sync() error {
	doc := document{Units: s.units, Tenants: s.tenants}

	b, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serialize entities: %w", err)
	}

	err = os.WriteFile(s.path, b, 0o644)
	if err != nil {
		return fmt.Errorf("write entities at %s: %w", s.path, err)
	}

	return s.importData()
}

// UnitIDs returns the unit identifiers in a stable order.
func (s *Store) UnitIDs() []string {
	return sortedKeys(s.units)
}

// TenantIDs returns the tenant identifiers in a stable order.
func (s *Store) TenantIDs() []string {
	return sortedKeys(s.tenants)
}

func (s *Store) Unit(id string) (Unit, bool) {
	rec, ok := s.units[id]
	return Unit{record: rec}, ok
}

// Tenant returns a live view over the tenant record.
// The view reads through the store so that it observes re-imported data.
func (s *Store) Tenant(id string) (Tenant, bool) {
	_, ok := s.tenants[id]
	return Tenant{id: id, store: s}, ok
}

func (s *Store) tenantRecord(id string) Record {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.tenants[id]
}

func (s *Store) setTenantField(id, field string, value any) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	rec := s.tenants[id]
	if rec == nil {
		return fmt.Errorf("unknown tenant %q", id)
	}

	rec[field] = value

	return s.sync()
}

func sortedKeys(m map[string]Record) []string {
	keys := make([]string, 0, len(m))

	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

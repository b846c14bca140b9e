package store

import (
	"fmt"
	"sort"

	"wheelsolve/internal/domain"
)

// RouteFileStore serves route specs from a JSON route table keyed by id.
type RouteFileStore struct {
	path  string
	raw   []byte
	specs map[string]domain.RouteSpec
}

type routeFile struct {
	Routes []domain.RouteSpec `json:"routes"`
}

// NewRouteFileStore loads and indexes the route table at path.
func NewRouteFileStore(path string) (*RouteFileStore, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("route table %s does not exist", path)
	}
	var file routeFile
	if err := readJSON(path, &file); err != nil {
		return nil, err
	}

	specs := make(map[string]domain.RouteSpec, len(file.Routes))
	for _, spec := range file.Routes {
		if spec.ID == "" {
			return nil, fmt.Errorf("route table %s contains a route without an id", path)
		}
		if _, dup := specs[spec.ID]; dup {
			return nil, fmt.Errorf("route table %s repeats id %q", path, spec.ID)
		}
		specs[spec.ID] = spec
	}
	return &RouteFileStore{path: path, raw: raw, specs: specs}, nil
}

// Load returns the spec for id.
func (s *RouteFileStore) Load(id string) (domain.RouteSpec, bool) {
	spec, ok := s.specs[id]
	return spec, ok
}

// IDs lists the available route ids in sorted order.
func (s *RouteFileStore) IDs() []string {
	out := make([]string, 0, len(s.specs))
	for id := range s.specs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Raw exposes the table bytes for receipt hashing.
func (s *RouteFileStore) Raw() []byte { return s.raw }

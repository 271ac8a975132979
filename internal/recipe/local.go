// Package recipe provides the built-in local recipe source used by demo
// and serve modes. Recipes are seeded from an embedded YAML catalog and
// can be extended from a user-supplied file.
package recipe

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/khmoussa/dishboard/internal/domain"
	"github.com/khmoussa/dishboard/internal/logger"
)

//go:embed recipes.yaml
var seedRaw []byte

// Compile-time interface check.
var _ domain.RecipeSource = (*LocalSource)(nil)

// LocalSource holds recipes in memory. Safe for concurrent reads.
type LocalSource struct {
	mu      sync.RWMutex
	recipes map[domain.RecipeID]domain.Recipe
	log     *logger.Logger
}

// NewLocalSource creates a source preloaded with the embedded catalog.
func NewLocalSource(log *logger.Logger) (*LocalSource, error) {
	src := &LocalSource{
		recipes: make(map[domain.RecipeID]domain.Recipe),
		log:     log,
	}
	if err := src.load(seedRaw); err != nil {
		return nil, fmt.Errorf("recipe: embedded catalog: %w", err)
	}
	return src, nil
}

// LoadFile merges recipes from a YAML file into the source. Entries with
// an id already present replace the built-in recipe.
func (s *LocalSource) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("recipe: read %s: %w", path, err)
	}
	if err := s.load(data); err != nil {
		return fmt.Errorf("recipe: parse %s: %w", path, err)
	}
	s.log.Info("recipe: loaded extra catalog from %s", path)
	return nil
}

func (s *LocalSource) load(data []byte) error {
	var doc struct {
		Recipes []domain.Recipe `yaml:"recipes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range doc.Recipes {
		if r.ID == "" || r.Name == "" {
			return fmt.Errorf("recipe %q: id and name are required", r.Name)
		}
		s.recipes[r.ID] = r
	}
	return nil
}

// Fetch returns recipes matching the filter, sorted by name. Search
// matches the name or description, ingredient matches any single
// ingredient; both are case-insensitive substring matches.
func (s *LocalSource) Fetch(ctx context.Context, f domain.Filter) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("recipe: local fetch, filter=%+v", f)

	out := make([]domain.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if matches(r, f) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get returns one recipe by id.
func (s *LocalSource) Get(ctx context.Context, id domain.RecipeID) (domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		return domain.Recipe{}, domain.ErrNotFound
	}
	return r, nil
}

func matches(r domain.Recipe, f domain.Filter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Description), q) {
			return false
		}
	}
	if f.Ingredient != "" {
		q := strings.ToLower(f.Ingredient)
		found := false
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

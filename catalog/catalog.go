// Package catalog holds the object types that can appear on the field and the
// nail each one turns into
package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/hammering-stuff/asset"
)

// DefaultBaseSize is used for definitions without a positive base_size
const DefaultBaseSize = 60

var (
	ErrEmptyCatalog  = errors.New("catalog has no object types")
	ErrMissingID     = errors.New("definition has no id")
	ErrDuplicateType = errors.New("duplicate object type")
	ErrUnknownNail   = errors.New("unknown nail type")
)

// Definition describes one object type
type Definition struct {
	ID       string  `toml:"id"`
	Name     string  `toml:"name"`
	BaseSize float64 `toml:"base_size"`
	NailType string  `toml:"nail_type"`
}

// Nail is a nail category an object becomes once hammered
type Nail struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// Catalog is an immutable, ordered set of object definitions and nails
type Catalog struct {
	defs   []Definition
	byID   map[string]int
	nails  []Nail
	nailBy map[string]int
}

type catalogFile struct {
	Nails   []Nail       `toml:"nails"`
	Objects []Definition `toml:"objects"`
}

var (
	builtinOnce sync.Once
	builtinCat  *Catalog
	builtinErr  error
)

// builtin parses the embedded catalog on first use
func builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtinCat, builtinErr = Load([]byte(asset.DefaultCatalogConfig))
	})
	return builtinCat, builtinErr
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := builtin()
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// DefaultNails returns the built-in nail categories
func DefaultNails() []Nail {
	return Default().Nails()
}

// Load parses catalog TOML with [[nails]] and [[objects]] arrays
// Without [[nails]] the built-in categories apply
func Load(data []byte) (*Catalog, error) {
	var f catalogFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("catalog parse: %w", err)
	}
	return New(f.Objects, f.Nails)
}

// New validates and builds a catalog; nil nails selects the built-in set
func New(defs []Definition, nails []Nail) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(nails) == 0 {
		nails = DefaultNails()
	}

	c := &Catalog{
		defs:   make([]Definition, 0, len(defs)),
		byID:   make(map[string]int, len(defs)),
		nails:  make([]Nail, 0, len(nails)),
		nailBy: make(map[string]int, len(nails)),
	}

	for i, n := range nails {
		if n.ID == "" {
			return nil, fmt.Errorf("nail %d: %w", i, ErrMissingID)
		}
		if n.Name == "" {
			n.Name = n.ID
		}
		c.nailBy[n.ID] = len(c.nails)
		c.nails = append(c.nails, n)
	}

	for i, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("object %d: %w", i, ErrMissingID)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("object %q: %w", d.ID, ErrDuplicateType)
		}
		if _, ok := c.nailBy[d.NailType]; !ok {
			return nil, fmt.Errorf("object %q nail %q: %w", d.ID, d.NailType, ErrUnknownNail)
		}
		if d.Name == "" {
			d.Name = d.ID
		}
		if d.BaseSize <= 0 {
			d.BaseSize = DefaultBaseSize
		}
		c.byID[d.ID] = len(c.defs)
		c.defs = append(c.defs, d)
	}

	return c, nil
}

// Len returns the number of object types
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Types returns the object type ids in catalog order
func (c *Catalog) Types() []string {
	ids := make([]string, len(c.defs))
	for i, d := range c.defs {
		ids[i] = d.ID
	}
	return ids
}

// Definitions returns a copy of all definitions in catalog order
func (c *Catalog) Definitions() []Definition {
	return append([]Definition(nil), c.defs...)
}

// Lookup finds a definition by type id
func (c *Catalog) Lookup(id string) (Definition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// Nail finds a nail category by id
func (c *Catalog) Nail(id string) (Nail, bool) {
	i, ok := c.nailBy[id]
	if !ok {
		return Nail{}, false
	}
	return c.nails[i], true
}

// Nails returns a copy of the nail categories
func (c *Catalog) Nails() []Nail {
	return append([]Nail(nil), c.nails...)
}

// Pick returns min(n, Len()) distinct definitions in shuffled order
func (c *Catalog) Pick(n int, rng *rand.Rand) []Definition {
	if n <= 0 {
		return nil
	}
	shuffled := c.Definitions()
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}

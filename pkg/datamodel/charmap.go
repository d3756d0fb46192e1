package datamodel

// CharMap maps the drill-down markers true (open), false (closed), and nil
// (indent) to display characters.
//
// Aliases are kept in a separate indirection table from alias name to
// underlying key, so reads and writes through an alias always reach the
// entry it names.
type CharMap struct {
	entries map[any]string
	aliases map[string]any
}

// NewCharMap creates a map with the given open, closed, and indent characters.
func NewCharMap(open, closed, indent string) *CharMap {
	cm := &CharMap{}
	cm.Set(true, open)
	cm.Set(false, closed)
	cm.Set(nil, indent)
	return cm
}

// DefaultCharMap returns the stock drill-down characters.
func DefaultCharMap() *CharMap {
	return NewCharMap("▾", "▸", " ")
}

func (c *CharMap) resolve(key any) any {
	if name, ok := key.(string); ok {
		if k, ok := c.aliases[name]; ok {
			return k
		}
	}
	return key
}

// Get returns the character stored under key or under the entry key aliases.
func (c *CharMap) Get(key any) (string, bool) {
	if c == nil {
		return "", false
	}
	s, ok := c.entries[c.resolve(key)]
	return s, ok
}

// Set stores v under key, or under the entry key aliases.
func (c *CharMap) Set(key any, v string) {
	if c.entries == nil {
		c.entries = make(map[any]string)
	}
	c.entries[c.resolve(key)] = v
}

// Has reports whether key is an entry or an alias.
func (c *CharMap) Has(key any) bool {
	if c == nil {
		return false
	}
	if name, ok := key.(string); ok {
		if _, ok := c.aliases[name]; ok {
			return true
		}
	}
	_, ok := c.entries[key]
	return ok
}

// Alias makes name a live view of the entry under key. It does nothing and
// returns false if name is already an entry or alias.
func (c *CharMap) Alias(name string, key any) bool {
	if c.Has(name) {
		return false
	}
	if c.aliases == nil {
		c.aliases = make(map[string]any)
	}
	c.aliases[name] = key
	return true
}

// Target returns the entry key an alias refers to.
func (c *CharMap) Target(name string) (any, bool) {
	k, ok := c.aliases[name]
	return k, ok
}

// Keys returns the entry keys. Aliases are not listed.
func (c *CharMap) Keys() []any {
	keys := make([]any, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

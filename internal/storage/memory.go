package storage

import "encoding/json"

// MemGateway implements Gateway in memory. Values round-trip through JSON so
// loads observe the same shapes a FileGateway would produce.
type MemGateway struct {
	values map[string][]byte
}

// compile-time check
var _ Gateway = (*MemGateway)(nil)

func NewMem() *MemGateway {
	return &MemGateway{values: make(map[string][]byte)}
}

func (g *MemGateway) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	g.values[key] = data
}

func (g *MemGateway) Load(key string, into any) bool {
	data, ok := g.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, into) == nil
}

func (g *MemGateway) Remove(key string) {
	delete(g.values, key)
}

func (g *MemGateway) Clear() {
	g.values = make(map[string][]byte)
}

// Corrupt overwrites a key with unparseable bytes, simulating a hand-edited
// or truncated value.
func (g *MemGateway) Corrupt(key string) {
	g.values[key] = []byte("{{not json")
}

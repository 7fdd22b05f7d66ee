package core

import "sort"

// KeyConfiguration ties a key to the locks it opens.
// Keys and locks refer to a configuration by index.
type KeyConfiguration struct {
	Index int
	Color string // Display color as #rrggbb
}

var keyConfigurations = map[int]KeyConfiguration{
	1: {Index: 1, Color: "#ffcc00"},
	2: {Index: 2, Color: "#00ccff"},
}

// KeyConfig returns the configuration for a lock index.
func KeyConfig(index int) (KeyConfiguration, bool) {
	kc, ok := keyConfigurations[index]
	return kc, ok
}

// KeyConfigs returns all known configurations ordered by index.
func KeyConfigs() []KeyConfiguration {
	out := make([]KeyConfiguration, 0, len(keyConfigurations))
	for _, kc := range keyConfigurations {
		out = append(out, kc)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}

// Removes reports whether picking up this key clears the given tile.
func (k KeyConfiguration) Removes(t Tile) bool {
	return t.IsLock(k.Index)
}

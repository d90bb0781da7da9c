package environment

import "fmt"

// maxEntries bounds the EnvironmentStore per spec.md §3 (>=128 entries).
const maxEntries = 256

// maxKeyValueLen bounds key/value length per spec.md §3 (<=127 bytes).
const maxKeyValueLen = 127

// Store is an ordered map of option key -> current value string, plus
// the fixed capability flags every plugin can query. Lifecycle: created
// empty, populated by SET_VARIABLES / SET_CORE_OPTIONS /
// SET_CORE_OPTIONS_INTL, queried by GET_VARIABLE.
type Store struct {
	keys   []string
	values map[string]string

	visible map[string]bool

	Overscan              bool
	CanDupe               bool
	InputBitmasksSupported bool
	CoreOptionsVersion    uint32
	DiskControlIfaceVer   uint32
}

// NewStore returns an empty store with the spec's fixed capability flags
// (overscan=true, can-dupe=true, input-bitmasks-supported=true,
// core-options-version=1, disk-control-interface-version=1).
func NewStore() *Store {
	return &Store{
		values:                make(map[string]string, maxEntries),
		visible:               make(map[string]bool, maxEntries),
		Overscan:              true,
		CanDupe:               true,
		InputBitmasksSupported: true,
		CoreOptionsVersion:    1,
		DiskControlIfaceVer:   1,
	}
}

// Set stores key=value, truncating both to maxKeyValueLen and evicting
// nothing — once maxEntries is reached, further Set calls on new keys are
// refused (existing keys may still be overwritten; "last writer wins" per
// spec.md §4.2 applies to overwrites of an existing key, not to growth
// past capacity).
func (s *Store) Set(key, value string) {
	if len(key) > maxKeyValueLen {
		key = key[:maxKeyValueLen]
	}
	if len(value) > maxKeyValueLen {
		value = value[:maxKeyValueLen]
	}
	if _, exists := s.values[key]; !exists {
		if len(s.keys) >= maxEntries {
			return
		}
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the current value and whether the key is known.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// SetVisible records SET_CORE_OPTIONS_DISPLAY's visibility bit for key.
func (s *Store) SetVisible(key string, visible bool) {
	s.visible[key] = visible
}

// Visible reports the visibility bit for key (true if never set, matching
// a freshly declared option's default display state).
func (s *Store) Visible(key string) bool {
	if v, ok := s.visible[key]; ok {
		return v
	}
	return true
}

// ParseVariableSpec splits a SET_VARIABLES value of the form
// "NAME; DEFAULT|ALT|..." into its description and its DEFAULT token
// (spec.md §4.2 / E2).
func ParseVariableSpec(spec string) (desc, def string) {
	semi := indexByte(spec, ';')
	if semi < 0 {
		return spec, ""
	}
	desc = spec[:semi]
	rest := spec[semi+1:]
	for len(rest) > 0 && rest[0] == ' ' {
		rest = rest[1:]
	}
	pipe := indexByte(rest, '|')
	if pipe < 0 {
		return desc, rest
	}
	return desc, rest[:pipe]
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func (s *Store) String() string {
	return fmt.Sprintf("Store{%d keys}", len(s.keys))
}

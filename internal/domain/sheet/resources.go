package sheet

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// spellSlotsKey is the one key under "resources" that is not a per-rest ability
const spellSlotsKey = "spell_slots"

// Counter is a per-rest ability pool
type Counter struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// SlotPool tracks spell slots of one level
type SlotPool struct {
	Total    int `json:"total"`
	Expended int `json:"expended"`
}

// Available returns how many slots can still be spent
func (p SlotPool) Available() int {
	return p.Total - p.Expended
}

// Resources holds leveled spell slots and named per-rest abilities.
// On the wire both live side by side under one object; see MarshalJSON.
type Resources struct {
	SpellSlots map[int]*SlotPool
	Abilities  map[string]*Counter
}

// AbilityNames returns the ability keys in alphabetical order
func (r Resources) AbilityNames() []string {
	return sortedKeys(r.Abilities)
}

// SlotLevels returns the spell slot levels in ascending order
func (r Resources) SlotLevels() []int {
	return sortedKeys(r.SpellSlots)
}

// MarshalJSON writes {"spell_slots": {...}, "<ability>": {...}, ...}
func (r Resources) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Abilities)+1)

	slots := make(map[string]*SlotPool, len(r.SpellSlots))
	for level, pool := range r.SpellSlots {
		slots[strconv.Itoa(level)] = pool
	}
	out[spellSlotsKey] = slots

	for name, counter := range r.Abilities {
		out[name] = counter
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads the flat layout written by MarshalJSON
func (r *Resources) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.SpellSlots = map[int]*SlotPool{}
	r.Abilities = map[string]*Counter{}

	for key, value := range raw {
		if key == spellSlotsKey {
			var slots map[string]*SlotPool
			if err := json.Unmarshal(value, &slots); err != nil {
				return fmt.Errorf("spell slots: %w", err)
			}
			for levelKey, pool := range slots {
				level, err := strconv.Atoi(levelKey)
				if err != nil {
					return fmt.Errorf("spell slot level %q is not a number", levelKey)
				}
				if pool == nil {
					pool = &SlotPool{}
				}
				r.SpellSlots[level] = pool
			}
			continue
		}

		var counter Counter
		if err := json.Unmarshal(value, &counter); err != nil {
			return fmt.Errorf("resource %q: %w", key, err)
		}
		r.Abilities[key] = &counter
	}

	return nil
}

func (r Resources) clone() Resources {
	out := Resources{}
	if r.SpellSlots != nil {
		out.SpellSlots = make(map[int]*SlotPool, len(r.SpellSlots))
		for level, pool := range r.SpellSlots {
			if pool == nil {
				continue
			}
			copied := *pool
			out.SpellSlots[level] = &copied
		}
	}
	if r.Abilities != nil {
		out.Abilities = make(map[string]*Counter, len(r.Abilities))
		for name, counter := range r.Abilities {
			if counter == nil {
				continue
			}
			copied := *counter
			out.Abilities[name] = &copied
		}
	}
	return out
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/headwear-patcher/internal/gamedata"
)

// Positions of the restriction flags inside an Override.
const (
	Headwear = iota
	Earpiece
	FaceCover
	Eyewear
)

// ErrInvalidOverride is returned when an override tuple does not hold
// exactly four flags.
var ErrInvalidOverride = errors.New("override must have exactly 4 entries")

// Override lists which restriction flags to clear on a matching item,
// indexed by Headwear, Earpiece, FaceCover and Eyewear. A true entry
// removes the block, a false entry keeps the item's value.
type Override [4]bool

// UnmarshalJSON decodes a JSON array of four booleans. null is treated
// like an absent key and leaves the override unchanged.
func (o *Override) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	var flags []bool
	if err := json.Unmarshal(data, &flags); err != nil {
		return err
	}
	return o.set(flags)
}

// UnmarshalYAML decodes a YAML sequence of four booleans. yaml.v3 does not
// call it for null, which therefore also leaves the override unchanged.
func (o *Override) UnmarshalYAML(value *yaml.Node) error {
	var flags []bool
	if err := value.Decode(&flags); err != nil {
		return err
	}
	return o.set(flags)
}

func (o *Override) set(flags []bool) error {
	if len(flags) != len(o) {
		return fmt.Errorf("%w, got %d", ErrInvalidOverride, len(flags))
	}
	copy(o[:], flags)
	return nil
}

// Config holds the patcher configuration.
type Config struct {
	Debug                  bool                `json:"debug" yaml:"debug"`
	FaceShieldItemIDs      []string            `json:"faceShieldItemIDs" yaml:"faceShieldItemIDs"`
	FaceShieldItemSettings Override            `json:"faceShieldItemSettings" yaml:"faceShieldItemSettings"`
	ItemSettings           map[string]Override `json:"itemSettings" yaml:"itemSettings"`
}

// Face shields that are classified as headwear or face covers but must
// still leave room for a helmet.
var defaultFaceShieldItemIDs = []string{
	"5c0e842486f77443a74d2976",
	"5f60c85b58eff926626a60f7",
	"5b46238386f7741a693bcf9c",
	"5ca2113f86f7740b2547e1d2",
	"5d6d3829a4b9361bc8618943",
	"5aa7e3abe5b5b000171d064d",
	"65719f9ef392ad76c50a2ec8",
	"5a16b7e1fcdbcb00165aa6c9",
	"658188edf026a90c1708c827",
	"65818e4e566d2de69901b1b1",
	"5e00cdd986f7747473332240",
	"5ac4c50d5acfc40019262e87",
	"5e01f37686f774773c6f6c15",
	"5c0919b50db834001b7ce3b9",
	"5aa7e373e5b5b000137b76f0",
	"5a16ba61fcdbcb098008728a",
	"5f60c076f2bcbb675b00dac2",
	"6570a88c8f221f3b210353b7",
}

// Default returns the configuration written on first run. Each gear
// category keeps only the restriction on its own slot.
func Default() *Config {
	ids := make([]string, len(defaultFaceShieldItemIDs))
	copy(ids, defaultFaceShieldItemIDs)

	return &Config{
		Debug:                  false,
		FaceShieldItemIDs:      ids,
		FaceShieldItemSettings: Override{false, true, true, true},
		ItemSettings: map[string]Override{
			gamedata.BaseClassHeadwear:   {false, true, true, true},
			gamedata.BaseClassHeadphones: {true, false, true, true},
			gamedata.BaseClassFaceCover:  {true, true, false, true},
			gamedata.BaseClassVisors:     {true, true, true, false},
		},
	}
}

// IsFaceShield reports whether id is listed as a face shield exception.
func (c *Config) IsFaceShield(id string) bool {
	for _, fs := range c.FaceShieldItemIDs {
		if fs == id {
			return true
		}
	}
	return false
}

// BaseClasses returns the keys of ItemSettings in ascending order, the
// order in which base class rules are tried.
func (c *Config) BaseClasses() []string {
	keys := make([]string, 0, len(c.ItemSettings))
	for k := range c.ItemSettings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate returns a description of every id that is not a well-formed
// object id. Such entries never match an item but are not fatal.
func (c *Config) Validate() []string {
	var problems []string
	for _, id := range c.FaceShieldItemIDs {
		if !gamedata.IsObjectID(id) {
			problems = append(problems, fmt.Sprintf("faceShieldItemIDs: malformed id %q", id))
		}
	}
	for _, id := range c.BaseClasses() {
		if !gamedata.IsObjectID(id) {
			problems = append(problems, fmt.Sprintf("itemSettings: malformed base class %q", id))
		}
	}
	return problems
}

package gamedata

import (
	"encoding/json"
	"fmt"
)

// TemplateItem is a single entry of the item template table.
// Keys the patcher does not model are kept in raw form so a template
// survives a decode/encode cycle unchanged apart from patched fields.
type TemplateItem struct {
	ID     string
	Name   string
	Parent string
	Type   string
	Props  *ItemProperties

	extra map[string]json.RawMessage
}

// ItemProperties holds the slot restriction flags of an item template.
// A nil flag means the template does not declare it.
type ItemProperties struct {
	BlocksHeadwear   *bool
	BlocksEarpiece   *bool
	BlocksFaceCover  *bool
	BlocksEyewear    *bool
	ConflictingItems []string

	extra map[string]json.RawMessage
}

var (
	itemKeys  = []string{"_id", "_name", "_parent", "_type", "_props"}
	propsKeys = []string{"BlocksHeadwear", "BlocksEarpiece", "BlocksFaceCover", "BlocksEyewear", "ConflictingItems"}
)

// UnmarshalJSON decodes a template, keeping unmodelled keys.
func (it *TemplateItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		key string
		dst any
	}{
		{"_id", &it.ID},
		{"_name", &it.Name},
		{"_parent", &it.Parent},
		{"_type", &it.Type},
	}
	for _, f := range fields {
		if err := decodeField(raw, f.key, f.dst); err != nil {
			return err
		}
	}

	it.Props = nil
	if v, ok := raw["_props"]; ok && string(v) != "null" {
		it.Props = &ItemProperties{}
		if err := json.Unmarshal(v, it.Props); err != nil {
			return fmt.Errorf("decode _props: %w", err)
		}
	}

	it.extra = withoutKeys(raw, itemKeys)
	return nil
}

// MarshalJSON encodes a template together with its unmodelled keys.
func (it TemplateItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(it.extra)+len(itemKeys))
	for k, v := range it.extra {
		out[k] = v
	}
	out["_id"] = it.ID
	out["_name"] = it.Name
	out["_parent"] = it.Parent
	out["_type"] = it.Type
	if it.Props != nil {
		out["_props"] = it.Props
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the properties, keeping unmodelled keys.
func (p *ItemProperties) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		key string
		dst any
	}{
		{"BlocksHeadwear", &p.BlocksHeadwear},
		{"BlocksEarpiece", &p.BlocksEarpiece},
		{"BlocksFaceCover", &p.BlocksFaceCover},
		{"BlocksEyewear", &p.BlocksEyewear},
		{"ConflictingItems", &p.ConflictingItems},
	}
	for _, f := range fields {
		if err := decodeField(raw, f.key, f.dst); err != nil {
			return err
		}
	}

	p.extra = withoutKeys(raw, propsKeys)
	return nil
}

// MarshalJSON encodes the properties; undeclared flags are omitted.
func (p ItemProperties) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.extra)+len(propsKeys))
	for k, v := range p.extra {
		out[k] = v
	}
	flags := []struct {
		key string
		val *bool
	}{
		{"BlocksHeadwear", p.BlocksHeadwear},
		{"BlocksEarpiece", p.BlocksEarpiece},
		{"BlocksFaceCover", p.BlocksFaceCover},
		{"BlocksEyewear", p.BlocksEyewear},
	}
	for _, f := range flags {
		if f.val != nil {
			out[f.key] = *f.val
		}
	}
	if p.ConflictingItems != nil {
		out["ConflictingItems"] = p.ConflictingItems
	}
	return json.Marshal(out)
}

func decodeField(raw map[string]json.RawMessage, key string, dst any) error {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func withoutKeys(raw map[string]json.RawMessage, keys []string) map[string]json.RawMessage {
	for _, k := range keys {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil
	}
	return raw
}

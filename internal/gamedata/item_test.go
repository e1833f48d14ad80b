package gamedata

import (
	"encoding/json"
	"testing"
)

const sampleItem = `{
	"_id": "5c0e842486f77443a74d2976",
	"_name": "item_equipment_facecover_maska1sch",
	"_parent": "5a341c4686f77469e155819e",
	"_type": "Item",
	"_proto": "5a16b7e1fcdbcb00165aa6c9",
	"_props": {
		"Weight": 1.1,
		"BlocksHeadwear": true,
		"BlocksEarpiece": false,
		"ConflictingItems": ["5aa7e276e5b5b000171d0647"],
		"armorColliders": ["HeadCommon"]
	}
}`

func TestTemplateItem_Unmarshal(t *testing.T) {
	var it TemplateItem
	if err := json.Unmarshal([]byte(sampleItem), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if it.ID != "5c0e842486f77443a74d2976" {
		t.Errorf("ID = %q", it.ID)
	}
	if it.Parent != BaseClassFaceCover {
		t.Errorf("Parent = %q, want face cover base class", it.Parent)
	}
	if it.Props == nil {
		t.Fatal("expected props")
	}
	if it.Props.BlocksHeadwear == nil || !*it.Props.BlocksHeadwear {
		t.Errorf("BlocksHeadwear = %v, want true", it.Props.BlocksHeadwear)
	}
	if it.Props.BlocksEarpiece == nil || *it.Props.BlocksEarpiece {
		t.Errorf("BlocksEarpiece = %v, want false", it.Props.BlocksEarpiece)
	}
	if it.Props.BlocksFaceCover != nil {
		t.Errorf("BlocksFaceCover = %v, want undeclared", *it.Props.BlocksFaceCover)
	}
	if len(it.Props.ConflictingItems) != 1 {
		t.Errorf("ConflictingItems = %v", it.Props.ConflictingItems)
	}
	if string(it.Props.extra["Weight"]) != "1.1" {
		t.Errorf("Weight extra = %s", it.Props.extra["Weight"])
	}
}

func TestTemplateItem_PreservesUnknownKeys(t *testing.T) {
	var it TemplateItem
	if err := json.Unmarshal([]byte(sampleItem), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	f := false
	it.Props.BlocksHeadwear = &f
	it.Props.ConflictingItems = []string{}

	data, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatalf("unmarshal generic: %v", err)
	}
	if generic["_proto"] != "5a16b7e1fcdbcb00165aa6c9" {
		t.Errorf("_proto lost: %v", generic["_proto"])
	}
	props, ok := generic["_props"].(map[string]any)
	if !ok {
		t.Fatalf("_props missing in %s", data)
	}
	if props["Weight"] != 1.1 {
		t.Errorf("Weight = %v", props["Weight"])
	}
	if props["BlocksHeadwear"] != false {
		t.Errorf("BlocksHeadwear = %v, want false", props["BlocksHeadwear"])
	}
	if _, ok := props["BlocksFaceCover"]; ok {
		t.Error("undeclared BlocksFaceCover should stay undeclared")
	}
	if c, ok := props["ConflictingItems"].([]any); !ok || len(c) != 0 {
		t.Errorf("ConflictingItems = %v, want empty list", props["ConflictingItems"])
	}
	if cols, ok := props["armorColliders"].([]any); !ok || len(cols) != 1 {
		t.Errorf("armorColliders = %v", props["armorColliders"])
	}
}

func TestTemplateItem_NoProps(t *testing.T) {
	var it TemplateItem
	if err := json.Unmarshal([]byte(`{"_id":"a","_props":null}`), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.Props != nil {
		t.Fatalf("expected nil props, got %+v", it.Props)
	}

	data, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatalf("unmarshal generic: %v", err)
	}
	if _, ok := generic["_props"]; ok {
		t.Errorf("expected no _props key in %s", data)
	}
}

func TestTemplateItem_BadFlag(t *testing.T) {
	var it TemplateItem
	err := json.Unmarshal([]byte(`{"_id":"a","_props":{"BlocksEyewear":"yes"}}`), &it)
	if err == nil {
		t.Fatal("expected error for non-boolean flag")
	}
}

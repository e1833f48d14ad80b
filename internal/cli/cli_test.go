package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OCharnyshevich/headwear-patcher/internal/config"
	"github.com/OCharnyshevich/headwear-patcher/internal/storage"
)

const itemsJSON = `{
	"5a341c4086f77401f2541505": {"_id": "5a341c4086f77401f2541505", "_name": "Headwear", "_parent": "", "_type": "Node"},
	"5aa7e276e5b5b000171d0647": {
		"_id": "5aa7e276e5b5b000171d0647",
		"_name": "altyn",
		"_parent": "5a341c4086f77401f2541505",
		"_type": "Item",
		"_props": {"BlocksEarpiece": true, "BlocksHeadwear": true, "ConflictingItems": ["5c0e842486f77443a74d2976"]}
	}
}`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := RootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeDatabase(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, storage.ItemsFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(itemsJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func readProps(t *testing.T, dbDir, id string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dbDir, storage.ItemsFile))
	if err != nil {
		t.Fatalf("read items: %v", err)
	}
	var items map[string]map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("parse items: %v", err)
	}
	props, ok := items[id]["_props"].(map[string]any)
	if !ok {
		t.Fatalf("item %s has no props", id)
	}
	return props
}

func TestInitCmd(t *testing.T) {
	modDir := t.TempDir()

	out, err := runCmd(t, "init", "--mod-dir", modDir)
	if err != nil {
		t.Fatalf("init: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(modDir, config.FileName)); err != nil {
		t.Fatalf("config not created: %v", err)
	}
	if !strings.Contains(out, "face shields: 18") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestPatchCmd_InPlace(t *testing.T) {
	modDir := t.TempDir()
	dbDir := writeDatabase(t)

	out, err := runCmd(t, "patch", "--mod-dir", modDir, "--database", dbDir)
	if err != nil {
		t.Fatalf("patch: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Patched 1 items!") {
		t.Errorf("summary missing:\n%s", out)
	}

	props := readProps(t, dbDir, "5aa7e276e5b5b000171d0647")
	if props["BlocksHeadwear"] != true {
		t.Errorf("BlocksHeadwear = %v, want true", props["BlocksHeadwear"])
	}
	if props["BlocksEarpiece"] != false {
		t.Errorf("BlocksEarpiece = %v, want false", props["BlocksEarpiece"])
	}
	if c, ok := props["ConflictingItems"].([]any); !ok || len(c) != 0 {
		t.Errorf("ConflictingItems = %v", props["ConflictingItems"])
	}
}

func TestPatchCmd_OutDirAndDebug(t *testing.T) {
	modDir := t.TempDir()
	dbDir := writeDatabase(t)
	outDir := t.TempDir()

	out, err := runCmd(t, "patch", "--mod-dir", modDir, "--database", dbDir, "--out", outDir, "--debug")
	if err != nil {
		t.Fatalf("patch: %v\n%s", err, out)
	}
	if !strings.Contains(out, "patched item") {
		t.Errorf("debug output missing:\n%s", out)
	}

	if props := readProps(t, dbDir, "5aa7e276e5b5b000171d0647"); props["BlocksEarpiece"] != true {
		t.Error("source database was modified")
	}
	if props := readProps(t, outDir, "5aa7e276e5b5b000171d0647"); props["BlocksEarpiece"] != false {
		t.Error("output database not patched")
	}
}

func TestPatchCmd_RequiresDatabase(t *testing.T) {
	if _, err := runCmd(t, "patch", "--mod-dir", t.TempDir()); err == nil {
		t.Fatal("expected error without --database")
	}
}

func TestPatchCmd_MalformedConfig(t *testing.T) {
	modDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(modDir, config.FileName), []byte(`{"faceShieldItemSettings": [true]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCmd(t, "patch", "--mod-dir", modDir, "--database", writeDatabase(t)); err == nil {
		t.Fatal("expected config error")
	}
}

func TestFetchCmd_LocalSource(t *testing.T) {
	src := writeDatabase(t)
	dst := filepath.Join(t.TempDir(), "db")

	out, err := runCmd(t, "fetch", "--source", src, "-o", dst)
	if err != nil {
		t.Fatalf("fetch: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(dst, storage.ItemsFile)); err != nil {
		t.Fatalf("items not fetched: %v", err)
	}
}

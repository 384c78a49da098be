// Where: internal/generator/renderer_snapshot_test.go
// What: Snapshot tests for rendered stubs.
// Why: Detect unintended template changes with stable fixtures.
package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ProskuraPD/glyreg/internal/domain/registration"
)

func TestRendererSnapshots(t *testing.T) {
	t.Run("native", func(t *testing.T) {
		req := mustRequest(t, "adder", "adder_reg.inc", []string{"ops/adder.h"}, registration.Native{Type: "NOps::TAdder"})
		content, err := Render(req, DefaultProfile())
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		assertSnapshot(t, "native_adder.golden", content)
	})

	t.Run("interpreted", func(t *testing.T) {
		req := mustRequest(t, "scorer", "scorer_reg.inc", nil, registration.Interpreted{Module: "scoring.model.Scorer"})
		content, err := Render(req, DefaultProfile())
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		assertSnapshot(t, "interpreted_scorer.golden", content)
	})

	t.Run("custom profile", func(t *testing.T) {
		profile := Profile{
			NativeWrapperInclude:      "rt/native.h",
			InterpretedWrapperInclude: "rt/script.h",
			RegistryInclude:           "rt/registry.h",
			Helper:                    "NRt::TRegistrar",
			Instance:                  "PLUGIN",
			NativeWrapper:             "NRt::TNative",
			InterpretedWrapper:        "NRt::TScript",
		}
		req := mustRequest(t, "multi", "multi_reg.inc", []string{"plugins/a.h", "plugins/b.h"}, registration.Native{Type: "NPlugins::TMulti<int>"})
		content, err := Render(req, profile)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		assertSnapshot(t, "custom_profile.golden", content)
	})
}

func assertSnapshot(t *testing.T, name, content string) {
	t.Helper()
	path := filepath.Join("testdata", "renderer", name)
	if os.Getenv("UPDATE_SNAPSHOTS") == "1" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir snapshot dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write snapshot: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("snapshot missing %s (set UPDATE_SNAPSHOTS=1): %v", path, err)
	}
	if content != string(expected) {
		t.Fatalf("snapshot mismatch for %s\n---want\n%s\n---got\n%s", path, expected, content)
	}
}

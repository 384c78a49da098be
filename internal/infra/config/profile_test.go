// Where: internal/infra/config/profile_test.go
// What: Tests for runtime profile loading.
// Why: Ensure profiles overlay defaults and bad files fail as configuration errors.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProskuraPD/glyreg/internal/domain/registration"
	"github.com/ProskuraPD/glyreg/internal/generator"
)

func TestLoadProfileEmptyPathReturnsDefault(t *testing.T) {
	profile, err := LoadProfile("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profile != generator.DefaultProfile() {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestLoadProfileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := "version: 1\nhelper: NPlugins::TRegistrar\ninstance: PLUGIN_REG\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profile.Helper != "NPlugins::TRegistrar" {
		t.Fatalf("unexpected helper: %s", profile.Helper)
	}
	if profile.Instance != "PLUGIN_REG" {
		t.Fatalf("unexpected instance: %s", profile.Instance)
	}
	defaults := generator.DefaultProfile()
	if profile.NativeWrapper != defaults.NativeWrapper {
		t.Fatalf("expected default native wrapper, got %s", profile.NativeWrapper)
	}
	if profile.RegistryInclude != defaults.RegistryInclude {
		t.Fatalf("expected default registry include, got %s", profile.RegistryInclude)
	}
}

func TestParseProfileEmptyDocument(t *testing.T) {
	profile, err := ParseProfile([]byte("\n"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profile != generator.DefaultProfile() {
		t.Fatalf("expected default profile, got %+v", profile)
	}
}

func TestParseProfileRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"unknown key":      "helpr: NX::TReg\n",
		"bad symbol":       "helper: \"not a symbol\"\n",
		"bad instance":     "instance: REG::X\n",
		"empty include":    "registry_include: \"\"\n",
		"angle in include": "registry_include: <registry.h>\n",
		"wrong version":    "version: 2\n",
		"not a mapping":    "- helper\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProfile([]byte(content))
			if !errors.Is(err, registration.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing profile")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

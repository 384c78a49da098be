// Where: internal/generator/renderer_test.go
// What: Tests for the registration stub renderer.
// Why: Keep the emitted text shape stable for downstream compilers.
package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/ProskuraPD/glyreg/internal/domain/registration"
)

func mustRequest(t *testing.T, name, output string, includes []string, impl registration.Implementation) registration.Request {
	t.Helper()
	req, err := registration.NewRequest(name, output, includes, impl)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	return req
}

func TestRenderNativeRegistration(t *testing.T) {
	req := mustRequest(t, "adder", "adder_reg.inc", []string{"ops/adder.h"}, registration.Native{Type: "NOps::TAdder"})

	content, err := Render(req, DefaultProfile())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(content, "#include <ops/adder.h>\n#include <glycine/gen/runtime/lib/cpp_wrapper.h>\n") {
		t.Fatalf("expected caller include before support includes, got:\n%s", content)
	}
	if !strings.Contains(content, `    "adder",`) {
		t.Fatalf("expected registration key, got:\n%s", content)
	}
	if !strings.Contains(content, "new NGlycine::TCppWrapper<NOps::TAdder>()") {
		t.Fatalf("expected native wrapper expression, got:\n%s", content)
	}
	if strings.Count(content, "static const NGlycine::TRegHelper REG(") != 1 {
		t.Fatalf("expected exactly one registration block, got:\n%s", content)
	}
}

func TestRenderInterpretedRegistration(t *testing.T) {
	req := mustRequest(t, "scorer", "scorer_reg.inc", nil, registration.Interpreted{Module: "scoring.model.Scorer"})

	content, err := Render(req, DefaultProfile())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(content, `new NGlycine::TPythonWrapper("scoring.model.Scorer")`) {
		t.Fatalf("expected module path as string argument, got:\n%s", content)
	}
	if got := strings.Count(content, "#include <"); got != 3 {
		t.Fatalf("expected only the 3 support includes, got %d:\n%s", got, content)
	}
}

func TestRenderWrapperEscapesModuleLiteral(t *testing.T) {
	expr, err := RenderWrapper(registration.Interpreted{Module: `odd"module\path`}, DefaultProfile())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := `new NGlycine::TPythonWrapper("odd\"module\\path")`
	if expr != want {
		t.Fatalf("RenderWrapper()=%s, want %s", expr, want)
	}
}

func TestRenderWrapperRequiresImplementation(t *testing.T) {
	_, err := RenderWrapper(nil, DefaultProfile())
	if !errors.Is(err, registration.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestRenderRejectsIncompleteProfile(t *testing.T) {
	req := mustRequest(t, "adder", "adder_reg.inc", nil, registration.Native{Type: "A"})
	profile := DefaultProfile()
	profile.Helper = ""
	profile.RegistryInclude = " "

	_, err := Render(req, profile)
	if !errors.Is(err, registration.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "registry_include, helper") {
		t.Fatalf("expected missing fields in message, got %v", err)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	req := mustRequest(t, "adder", "adder_reg.inc", []string{"b.h", "a.h"}, registration.Native{Type: "NOps::TAdder"})
	first, err := Render(req, DefaultProfile())
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := Render(req, DefaultProfile())
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first != second {
		t.Fatalf("renders differ:\n%s\n---\n%s", first, second)
	}
}

// Where: internal/generator/profile.go
// What: Symbol names and support headers used by the stub template.
// Why: Keep the runtime library's names in one overridable place.
package generator

import (
	"fmt"
	"strings"

	"github.com/ProskuraPD/glyreg/internal/domain/registration"
)

// Profile describes the runtime library the generated stub compiles against.
type Profile struct {
	NativeWrapperInclude      string `yaml:"native_wrapper_include"`
	InterpretedWrapperInclude string `yaml:"interpreted_wrapper_include"`
	RegistryInclude           string `yaml:"registry_include"`
	Helper                    string `yaml:"helper"`
	Instance                  string `yaml:"instance"`
	NativeWrapper             string `yaml:"native_wrapper"`
	InterpretedWrapper        string `yaml:"interpreted_wrapper"`
}

// DefaultProfile returns the glycine runtime names.
func DefaultProfile() Profile {
	return Profile{
		NativeWrapperInclude:      "glycine/gen/runtime/lib/cpp_wrapper.h",
		InterpretedWrapperInclude: "glycine/gen/runtime/lib/python_wrapper.h",
		RegistryInclude:           "glycine/gen/runtime/lib/registry.h",
		Helper:                    "NGlycine::TRegHelper",
		Instance:                  "REG",
		NativeWrapper:             "NGlycine::TCppWrapper",
		InterpretedWrapper:        "NGlycine::TPythonWrapper",
	}
}

// SupportIncludes returns the three fixed headers, in emission order.
func (p Profile) SupportIncludes() []string {
	return []string{p.NativeWrapperInclude, p.InterpretedWrapperInclude, p.RegistryInclude}
}

// Validate reports every empty field at once.
func (p Profile) Validate() error {
	fields := []struct {
		key   string
		value string
	}{
		{"native_wrapper_include", p.NativeWrapperInclude},
		{"interpreted_wrapper_include", p.InterpretedWrapperInclude},
		{"registry_include", p.RegistryInclude},
		{"helper", p.Helper},
		{"instance", p.Instance},
		{"native_wrapper", p.NativeWrapper},
		{"interpreted_wrapper", p.InterpretedWrapper},
	}
	var missing []string
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.key)
		}
	}
	if len(missing) > 0 {
		return &registration.ConfigurationError{
			Reason: fmt.Sprintf("profile is missing %s", strings.Join(missing, ", ")),
		}
	}
	return nil
}

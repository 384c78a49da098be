// Where: internal/infra/config/profile.go
// What: Load a runtime profile YAML over the default profile.
// Why: Let projects with renamed runtime symbols reuse the generator.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/ProskuraPD/glyreg/internal/domain/registration"
	"github.com/ProskuraPD/glyreg/internal/generator"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

const profileSchemaURL = "https://glyreg.local/schema/profile.schema.json"

//go:embed schema/profile.schema.json
var profileSchemaSource []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// profileFile is the on-disk shape; Version is accepted but not used yet.
type profileFile struct {
	Version           int `yaml:"version"`
	generator.Profile `yaml:",inline"`
}

// LoadProfile reads path and overlays it on generator.DefaultProfile.
// An empty path returns the default profile.
func LoadProfile(path string) (generator.Profile, error) {
	if strings.TrimSpace(path) == "" {
		return generator.DefaultProfile(), nil
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return generator.Profile{}, fmt.Errorf("read profile: %w", err)
	}
	return ParseProfile(payload)
}

// ParseProfile validates payload against the profile schema and decodes it.
func ParseProfile(payload []byte) (generator.Profile, error) {
	if err := validateProfile(payload); err != nil {
		return generator.Profile{}, &registration.ConfigurationError{Reason: fmt.Sprintf("invalid profile: %v", err)}
	}

	file := profileFile{Profile: generator.DefaultProfile()}
	if err := yaml.Unmarshal(payload, &file); err != nil {
		return generator.Profile{}, &registration.ConfigurationError{Reason: fmt.Sprintf("decode profile: %v", err)}
	}
	if err := file.Profile.Validate(); err != nil {
		return generator.Profile{}, err
	}
	return file.Profile, nil
}

func validateProfile(payload []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	jsonData, err := sigsyaml.YAMLToJSON(payload)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}
	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	return sch.Validate(document)
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(profileSchemaURL, bytes.NewReader(profileSchemaSource)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(profileSchemaURL)
	})
	return compiledSchema, schemaErr
}

// Where: internal/generator/inspect.go
// What: Read a generated stub back into its registration fields.
// Why: Let build systems verify an existing stub without re-running generation.
package generator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ProskuraPD/glyreg/internal/domain/registration"
)

var (
	errMalformedStub = errors.New("malformed registration stub")

	includeLine      = regexp.MustCompile(`^#include <(.+)>$`)
	registrationLine = regexp.MustCompile(`^static const (\S+) (\S+)\($`)
	keyLine          = regexp.MustCompile(`^\s*("(?:[^"\\]|\\.)*"),$`)
	nativeLine       = regexp.MustCompile(`^\s*new (\S+?)<(.+)>\(\)$`)
	interpretedLine  = regexp.MustCompile(`^\s*new (\S+)\(("(?:[^"\\]|\\.)*")\)$`)
)

// Registration is the content of one parsed stub.
type Registration struct {
	Name           string
	Implementation registration.Implementation
	// Includes holds the caller includes only; the three support
	// includes are reported separately.
	Includes        []string
	SupportIncludes []string
	Helper          string
	Instance        string
}

// Inspect parses stub text produced by Render with any profile.
func Inspect(content string) (Registration, error) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	var includes []string
	blockStart := -1
	for idx, line := range lines {
		if match := includeLine.FindStringSubmatch(line); match != nil {
			if blockStart >= 0 {
				return Registration{}, fmt.Errorf("%w: include after registration block", errMalformedStub)
			}
			includes = append(includes, match[1])
			continue
		}
		if registrationLine.MatchString(line) {
			if blockStart >= 0 {
				return Registration{}, fmt.Errorf("%w: more than one registration block", errMalformedStub)
			}
			blockStart = idx
		}
	}
	if blockStart < 0 {
		return Registration{}, fmt.Errorf("%w: registration block not found", errMalformedStub)
	}
	if len(includes) < 3 {
		return Registration{}, fmt.Errorf("%w: expected 3 support includes, found %d includes", errMalformedStub, len(includes))
	}
	if blockStart+3 >= len(lines) || strings.TrimSpace(lines[blockStart+3]) != ");" {
		return Registration{}, fmt.Errorf("%w: truncated registration block", errMalformedStub)
	}

	header := registrationLine.FindStringSubmatch(lines[blockStart])
	name, err := parseKey(lines[blockStart+1])
	if err != nil {
		return Registration{}, err
	}
	impl, err := parseWrapper(lines[blockStart+2])
	if err != nil {
		return Registration{}, err
	}

	split := len(includes) - 3
	return Registration{
		Name:            name,
		Implementation:  impl,
		Includes:        includes[:split:split],
		SupportIncludes: includes[split:],
		Helper:          header[1],
		Instance:        header[2],
	}, nil
}

func parseKey(line string) (string, error) {
	match := keyLine.FindStringSubmatch(line)
	if match == nil {
		return "", fmt.Errorf("%w: registration key not found", errMalformedStub)
	}
	name, err := strconv.Unquote(match[1])
	if err != nil {
		return "", fmt.Errorf("%w: registration key: %v", errMalformedStub, err)
	}
	return name, nil
}

func parseWrapper(line string) (registration.Implementation, error) {
	if match := interpretedLine.FindStringSubmatch(line); match != nil {
		module, err := strconv.Unquote(match[2])
		if err != nil {
			return nil, fmt.Errorf("%w: interpreted module: %v", errMalformedStub, err)
		}
		return registration.Interpreted{Module: module}, nil
	}
	if match := nativeLine.FindStringSubmatch(line); match != nil {
		return registration.Native{Type: match[2]}, nil
	}
	return nil, fmt.Errorf("%w: wrapper expression not recognised", errMalformedStub)
}

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/swima/internal/swid"
)

// LoadTargets reads a YAML target list: a sequence of software
// identifiers. An empty path yields an empty (unrestricted) set.
//
// Example file:
//
//	- strongswan.org__Ubuntu_22.04-x86_64-strongswan-5.9.5
//	- strongswan.org__Ubuntu_22.04-x86_64-tnc-imcvs
func LoadTargets(path string) (swid.TargetSet, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading target file %s: %w", path, err)
	}

	var targets []string
	if err := yaml.Unmarshal(data, &targets); err != nil {
		return nil, fmt.Errorf("parsing target file %s: %w", path, err)
	}

	for _, id := range targets {
		if err := swid.ValidateSoftwareID(id); err != nil {
			return nil, fmt.Errorf("target file %s: %w", path, err)
		}
	}

	return swid.TargetSet(targets), nil
}

package pkgmgr

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ApplyPins spells each dependency with its pinned constraint ("jest@^29.0.0")
// when pins has an entry for it. Order and duplicates are preserved. Every
// pin must be a valid semver constraint.
func ApplyPins(deps []string, pins map[string]string) ([]string, error) {
	for name, c := range pins {
		if _, err := semver.NewConstraint(c); err != nil {
			return nil, fmt.Errorf("invalid version constraint %q for %s: %w", c, name, err)
		}
	}

	out := make([]string, len(deps))
	for i, d := range deps {
		if c, ok := pins[d]; ok {
			out[i] = d + "@" + c
			continue
		}
		out[i] = d
	}
	return out, nil
}

// ToolVersion runs "<bin> --version" and parses the result as semver.
func ToolVersion(ctx context.Context, ex Executor, bin string) (*semver.Version, error) {
	out, err := ex.Run(ctx, "", bin, "--version")
	if err != nil {
		return nil, err
	}
	raw := strings.TrimPrefix(strings.TrimSpace(out.Stdout), "v")
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s version %q: %w", bin, raw, err)
	}
	return v, nil
}

// SatisfiesVersion reports whether v meets constraint.
func SatisfiesVersion(v *semver.Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}

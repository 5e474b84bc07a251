package tooling

import (
	"fmt"
	"strings"
)

// Option is one optional tooling integration offered by the create command.
type Option int

// The option set is closed: adding an integration means adding a constant
// here and a case to every switch below.
const (
	LintFormat Option = iota
	TestRunner
	CommitLint
	Monorepo
)

// All returns every option in presentation order.
func All() []Option {
	return []Option{LintFormat, TestRunner, CommitLint, Monorepo}
}

// Label returns the name shown in the selection prompt.
func (o Option) Label() string {
	switch o {
	case LintFormat:
		return "ESLint / Prettier"
	case TestRunner:
		return "Jest"
	case CommitLint:
		return "Commitlint"
	case Monorepo:
		return "Lerna"
	default:
		return fmt.Sprintf("Option(%d)", int(o))
	}
}

// String returns the short identifier accepted by --tools.
func (o Option) String() string {
	switch o {
	case LintFormat:
		return "lint"
	case TestRunner:
		return "jest"
	case CommitLint:
		return "commitlint"
	case Monorepo:
		return "lerna"
	default:
		return fmt.Sprintf("option-%d", int(o))
	}
}

var aliases = map[string]Option{
	"lint":       LintFormat,
	"eslint":     LintFormat,
	"prettier":   LintFormat,
	"format":     LintFormat,
	"jest":       TestRunner,
	"test":       TestRunner,
	"commitlint": CommitLint,
	"commit":     CommitLint,
	"lerna":      Monorepo,
	"monorepo":   Monorepo,
}

// ParseOption maps a tool name or alias to its Option.
func ParseOption(name string) (Option, error) {
	o, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown tool %q: valid tools are lint, jest, commitlint, lerna", name)
	}
	return o, nil
}

// Selection is the immutable set of options chosen for one run.
type Selection struct {
	set map[Option]bool
}

// NewSelection builds a Selection from the given options. Duplicates collapse.
func NewSelection(opts ...Option) Selection {
	s := Selection{set: make(map[Option]bool, len(opts))}
	for _, o := range opts {
		s.set[o] = true
	}
	return s
}

// Has reports whether o was selected.
func (s Selection) Has(o Option) bool {
	return s.set[o]
}

// Options returns the selected options in presentation order.
func (s Selection) Options() []Option {
	var opts []Option
	for _, o := range All() {
		if s.set[o] {
			opts = append(opts, o)
		}
	}
	return opts
}

// Len returns the number of selected options.
func (s Selection) Len() int {
	return len(s.set)
}

func (s Selection) String() string {
	opts := s.Options()
	if len(opts) == 0 {
		return "none"
	}
	names := make([]string, len(opts))
	for i, o := range opts {
		names[i] = o.Label()
	}
	return strings.Join(names, ", ")
}

// Parse turns a comma-separated tool list (e.g. "lint,jest") into a Selection.
// An empty string yields an empty selection.
func Parse(list string) (Selection, error) {
	var opts []Option
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		o, err := ParseOption(part)
		if err != nil {
			return Selection{}, err
		}
		opts = append(opts, o)
	}
	return NewSelection(opts...), nil
}

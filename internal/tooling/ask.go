package tooling

import "fmt"

// Chooser presents a multi-select and returns the indices picked, in the order
// the choices were presented.
type Chooser interface {
	MultiSelect(message string, choices []string) ([]int, error)
}

// Ask presents every option as a multi-select and returns the chosen subset.
// Picking nothing is valid and yields an empty selection.
func Ask(c Chooser) (Selection, error) {
	all := All()
	labels := make([]string, len(all))
	for i, o := range all {
		labels[i] = o.Label()
	}

	picked, err := c.MultiSelect("Select the tooling to configure:", labels)
	if err != nil {
		return Selection{}, fmt.Errorf("selecting tooling: %w", err)
	}

	opts := make([]Option, 0, len(picked))
	for _, idx := range picked {
		if idx < 0 || idx >= len(all) {
			return Selection{}, fmt.Errorf("selection index %d out of range", idx)
		}
		opts = append(opts, all[idx])
	}
	return NewSelection(opts...), nil
}

package nbformat

import (
	"errors"
	"fmt"
	"regexp"
)

var cellIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// Validate checks the structural rules of the v4.5 schema that this package
// can violate: version stamp, cell types, cell ids and code-cell fields.
func Validate(nb *Notebook) error {
	if nb == nil {
		return errors.New("notebook is nil")
	}
	if nb.NBFormat != Major {
		return fmt.Errorf("unsupported nbformat %d", nb.NBFormat)
	}
	if nb.NBFormatMinor < 0 {
		return fmt.Errorf("invalid nbformat_minor %d", nb.NBFormatMinor)
	}

	seen := make(map[string]int, len(nb.Cells))
	var errs []error
	for i, c := range nb.Cells {
		switch c.CellType {
		case TypeMarkdown:
			if c.ExecutionCount != nil || len(c.Outputs) > 0 {
				errs = append(errs, fmt.Errorf("cell %d: markdown cell has execution state", i))
			}
		case TypeCode:
		default:
			errs = append(errs, fmt.Errorf("cell %d: unknown cell_type %q", i, c.CellType))
		}

		if nb.NBFormatMinor >= 5 {
			if !cellIDPattern.MatchString(c.ID) {
				errs = append(errs, fmt.Errorf("cell %d: invalid id %q", i, c.ID))
			} else if prev, dup := seen[c.ID]; dup {
				errs = append(errs, fmt.Errorf("cell %d: id %q already used by cell %d", i, c.ID, prev))
			} else {
				seen[c.ID] = i
			}
		}
	}
	return errors.Join(errs...)
}

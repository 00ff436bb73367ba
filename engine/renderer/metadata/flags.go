package metadata

import "golang.org/x/exp/constraints"

// hasAll reports whether every bit of mask is set in v.
func hasAll[T constraints.Unsigned](v, mask T) bool {
	return v&mask == mask
}

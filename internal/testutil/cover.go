package testutil

import (
	"fmt"
	"strings"

	"github.com/pborges/qmin/internal/minimize"
)

// CheckCover evaluates cover on every row of table. missing holds minterms no
// term covers; extra holds rows with output 0 that some term covers.
func CheckCover(table []int, cover []minimize.Implicant) (missing, extra []uint64) {
	for i, v := range table {
		row := uint64(i)
		hit := false
		for _, imp := range cover {
			if imp.Covers(row) {
				hit = true
				break
			}
		}
		switch {
		case v == 1 && !hit:
			missing = append(missing, row)
		case v != 1 && hit:
			extra = append(extra, row)
		}
	}
	return missing, extra
}

// CompareCover returns "" when cover is equivalent to table, otherwise a
// description of the rows where they disagree.
func CompareCover(table []int, cover []minimize.Implicant) string {
	missing, extra := CheckCover(table, cover)
	if len(missing) == 0 && len(extra) == 0 {
		return ""
	}
	var out strings.Builder
	if len(missing) > 0 {
		fmt.Fprintf(&out, "uncovered minterms: %v\n", missing)
	}
	if len(extra) > 0 {
		fmt.Fprintf(&out, "covered off-set rows: %v\n", extra)
	}
	return out.String()
}

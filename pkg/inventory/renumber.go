package inventory

import (
	"encoding/json"
	"fmt"

	"github.com/lotworks/lotfix/pkg/constants"
)

// Result reports what a renumbering pass touched.
type Result struct {
	// Renumbered is the number of new-car entries whose id was rewritten.
	Renumbered int

	// Kept is the number of used-car entries left alone.
	Kept int
}

// Renumber rewrites the id of every entry in the new-car collection to its
// 1-based list position, in order, overwriting any prior value. Every other
// field and the entire used-car collection are untouched. The operation is
// idempotent: renumbering an already sequential collection changes nothing.
func Renumber(doc *Document) Result {
	for i, car := range doc.Cars {
		car.SetID(constants.NewCarIDStart + i)
	}
	return Result{
		Renumbered: len(doc.Cars),
		Kept:       len(doc.UsedCars),
	}
}

// Lines returns the human-readable summary printed after a renumbering run.
// The used-car range is the documented convention for used stock; it is
// reported, not verified.
func (r Result) Lines() []string {
	return []string{
		fmt.Sprintf("Reordered %d new cars (IDs 1-%d)", r.Renumbered, r.Renumbered),
		fmt.Sprintf("Kept %d used cars (IDs %d-%d)", r.Kept,
			constants.UsedCarIDRangeStart, constants.UsedCarIDRangeEnd),
	}
}

// CheckReport describes the state of a document without modifying it.
type CheckReport struct {
	// Sequential is true when the new-car ids already run 1..N in order.
	Sequential bool

	// Collisions lists used-car ids that fall inside the 1..N range a
	// renumbering run would occupy. Collisions are reported for the caller
	// to judge; the two ranges are disjoint by convention only.
	Collisions []int
}

// Check inspects a document and reports whether renumbering would change it
// and whether any used-car id would overlap the renumbered range.
func Check(doc *Document) CheckReport {
	report := CheckReport{Sequential: true}

	for i, car := range doc.Cars {
		id, ok := car.ID()
		if !ok || id != constants.NewCarIDStart+i {
			report.Sequential = false
			break
		}
	}

	n := len(doc.Cars)
	for _, raw := range doc.UsedCars {
		var entry struct {
			ID *int `json:"id"`
		}
		if err := json.Unmarshal(raw, &entry); err != nil || entry.ID == nil {
			continue
		}
		if *entry.ID >= constants.NewCarIDStart && *entry.ID <= n {
			report.Collisions = append(report.Collisions, *entry.ID)
		}
	}

	return report
}

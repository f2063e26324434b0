package layout

import (
	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/status"
	"github.com/lixenwraith/hammering-stuff/vmath"
)

// RepairReport summarizes a repair run
type RepairReport struct {
	Passes    int // Passes that re-placed at least one object
	Remaining int // Overlapping pairs left when repair stopped
}

// Overlaps returns index pairs (i < j) whose collision circles overlap
// Circles are centered on the anchors, as the placement distances are
func Overlaps(objects []core.GameObject) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(objects); i++ {
		for j := i + 1; j < len(objects); j++ {
			if vmath.CirclesOverlap(objects[i].Position, objects[i].Radius, objects[j].Position, objects[j].Radius) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// Repair re-places the second object of every overlapping pair, holding the first
// fixed, for up to MaxRepairPasses passes. Overlaps may survive; the layout
// is accepted as-is in that case
func (p *Placer) Repair(objects []core.GameObject) RepairReport {
	var report RepairReport

	for report.Passes < MaxRepairPasses {
		pairs := Overlaps(objects)
		if len(pairs) == 0 {
			break
		}

		for _, pair := range pairs {
			j := pair[1]
			others := make([]core.Position, 0, len(objects)-1)
			for k := range objects {
				if k != j {
					others = append(others, objects[k].Position)
				}
			}
			objects[j].Position, _ = p.Place(others)
		}
		report.Passes++
	}

	report.Remaining = len(Overlaps(objects))

	status.Add(p.statPasses, int64(report.Passes))
	if report.Remaining > 0 {
		status.Add(p.statOverlap, int64(report.Remaining))
		logf("layout: %d overlapping pairs left after %d repair passes", report.Remaining, report.Passes)
	}
	return report
}

package playoff

import (
	"sort"

	"github.com/dominikbraun/graph"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

// CycleReport inspects a placeholder map for entries that refer back to
// themselves, directly or through a chain. Valid tournament data never
// contains such cycles; the resolver survives them regardless, this
// report exists to surface the data bug. Each reported cycle lists the
// codes involved, sorted.
func CycleReport(teamMap map[string]string) [][]string {
	g := graph.New(graph.StringHash, graph.Directed())

	for key, val := range teamMap {
		if domain.IsFinalCode(val) {
			continue
		}
		_ = g.AddVertex(key)
		if val == key {
			continue
		}
		_ = g.AddVertex(val)
		_ = g.AddEdge(key, val)
	}

	var cycles [][]string
	for key, val := range teamMap {
		if val == key && !domain.IsFinalCode(val) {
			cycles = append(cycles, []string{key})
		}
	}

	components, err := graph.StronglyConnectedComponents(g)
	if err != nil {
		return cycles
	}
	for _, component := range components {
		if len(component) < 2 {
			continue
		}
		sort.Strings(component)
		cycles = append(cycles, component)
	}
	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i][0] < cycles[j][0]
	})
	return cycles
}

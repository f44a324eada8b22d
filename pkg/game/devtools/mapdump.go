// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gookit/color"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// DumpMap writes a full debug dump of the simulation to w: metadata, legend,
// the map with agent/goal/path overlay, the path cell list, counters, and the
// message log. Format is human- and LLM-readable (sections, key: value,
// consistent structure).
func DumpMap(w io.Writer, st *state.AgentState) error {
	if st == nil || st.Grid() == nil {
		return fmt.Errorf("devtools: no grid to dump")
	}

	g := st.Grid()
	agent := st.Agent()
	goal, hasGoal := st.Goal()
	path := st.Path()
	stats := st.Stats()

	onPath := make(map[grid.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, agent, path) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_width: %d\n", g.Width())
	fmt.Fprintf(w, "grid_height: %d\n", g.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical, origin top-left)\n")
	fmt.Fprintf(w, "diagonal_movement: %v\n", g.DiagonalMovement())
	fmt.Fprintf(w, "seed: %d\n", st.Seed())
	fmt.Fprintf(w, "blocked_cells: %d\n", g.CountBlocked())
	fmt.Fprintf(w, "agent_cell: %s\n", agent)
	if hasGoal {
		fmt.Fprintf(w, "goal_cell: %s\n", goal)
	} else {
		fmt.Fprintln(w, "goal_cell: none")
	}
	fmt.Fprintf(w, "path_length: %d\n", len(path))
	fmt.Fprintf(w, "path_cost: %.3f\n", path.Cost())
	fmt.Fprintf(w, "path_count: %d\n", st.PathCount())
	fmt.Fprintf(w, "no_path_found: %v\n", st.NoPathFound())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = open  # = blocked  * = path  @ = agent  X = goal")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Cell{X: x, Y: y}
			switch {
			case c == agent:
				fmt.Fprint(w, "@")
			case hasGoal && c == goal:
				fmt.Fprint(w, "X")
			case onPath[c]:
				fmt.Fprint(w, "*")
			case g.Blocked(c):
				fmt.Fprint(w, "#")
			default:
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Path (agent to goal, inclusive) ---")
	if len(path) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for i, c := range path {
		fmt.Fprintf(w, "  step: %d cell: %s\n", i, c)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Counters ---")
	fmt.Fprintf(w, "ticks: %d\n", stats.Ticks)
	fmt.Fprintf(w, "elapsed_ms: %.1f\n", stats.ElapsedMs)
	fmt.Fprintf(w, "searches: %d\n", stats.Searches)
	fmt.Fprintf(w, "failed_searches: %d\n", stats.FailedSearches)
	fmt.Fprintf(w, "nodes_expanded: %d\n", stats.NodesExpanded)
	fmt.Fprintf(w, "last_search_expanded: %d\n", stats.LastExpanded)
	fmt.Fprintf(w, "map_regenerations: %d\n", stats.Regens)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Messages ---")
	if len(st.Messages) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, msg := range st.Messages {
		// Messages may carry terminal styling; the dump wants plain text.
		fmt.Fprintf(w, "  %s\n", color.ClearCode(msg))
	}

	return nil
}

// DumpMapToFile writes the debug dump to map.txt in the working directory and
// returns its absolute path.
func DumpMapToFile(st *state.AgentState) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, st); err != nil {
		return "", err
	}
	return absPath, nil
}

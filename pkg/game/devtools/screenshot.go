package devtools

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/state"
)

// SaveScreenshotHTML saves the current map view as an HTML file and returns
// its name. The file is self-contained and renders the full grid with the
// agent, goal and path highlighted.
func SaveScreenshotHTML(st *state.AgentState) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	g := st.Grid()
	if g == nil {
		return "", fmt.Errorf("devtools: no grid to screenshot")
	}

	agent := st.Agent()
	goal, hasGoal := st.Goal()
	path := st.Path()

	onPath := make(map[grid.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Pathfinder - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .subheader {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .agent { color: #00ff00; font-weight: bold; }
        .goal { color: #ffff00; font-weight: bold; }
        .path { color: #00ffff; }
        .wall { color: #666; }
        .open { color: #333; }
        .status {
            margin-top: 20px;
            color: #888;
        }
        .status-value { color: #bb86fc; }
        .status-warning { color: #ff4444; font-weight: bold; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	// Header
	html.WriteString(fmt.Sprintf(`    <div class="header">Pathfinder - seed %d</div>`+"\n", st.Seed()))
	html.WriteString(fmt.Sprintf(`    <div class="subheader">%dx%d %s map</div>`+"\n",
		g.Width(), g.Height(), st.GeneratorName()))

	// Map container
	html.WriteString(`    <div class="map-container">` + "\n")

	for y := 0; y < g.Height(); y++ {
		html.WriteString(`        <div class="map-row">`)
		for x := 0; x < g.Width(); x++ {
			c := grid.Cell{X: x, Y: y}
			icon, class := cellHTMLInfo(g, c, agent, goal, hasGoal, onPath)
			html.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
		}
		html.WriteString("</div>\n")
	}

	html.WriteString(`    </div>` + "\n")

	// Status
	html.WriteString(`    <div class="status">Path: `)
	if st.NoPathFound() {
		html.WriteString(`<span class="status-warning">NO PATH FOUND</span>`)
	} else if len(path) > 0 {
		html.WriteString(fmt.Sprintf(`<span class="status-value">%d cells, cost %.2f</span>`,
			len(path), path.Cost()))
	} else {
		html.WriteString(`<span style="color:#666">(none)</span>`)
	}
	html.WriteString(fmt.Sprintf(` | Paths computed: <span class="status-value">%d</span>`, st.PathCount()))
	html.WriteString(`</div>` + "\n")

	// Messages
	if len(st.Messages) > 0 {
		html.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range st.Messages {
			// Strip ANSI codes for HTML output
			html.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", color.ClearCode(msg)))
		}
		html.WriteString(`    </div>` + "\n")
	}

	html.WriteString(`</body>
</html>
`)

	if err := os.WriteFile(filename, []byte(html.String()), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// cellHTMLInfo returns the icon and CSS class for a cell
func cellHTMLInfo(g *grid.Grid, c, agent, goal grid.Cell, hasGoal bool, onPath map[grid.Cell]bool) (string, string) {
	switch {
	case c == agent:
		return "@", "agent"
	case hasGoal && c == goal:
		return "X", "goal"
	case onPath[c]:
		return "•", "path"
	case g.Blocked(c):
		return "▒", "wall"
	default:
		return "·", "open"
	}
}

package devtools

import (
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"
	"time"

	"dungeonlab/pkg/engine/world"
	"dungeonlab/pkg/game/renderer"
	"dungeonlab/pkg/game/state"
)

// WriteScreenshotHTML renders the session's map as a standalone HTML page
func WriteScreenshotHTML(sb *strings.Builder, s *state.Session) error {
	if s.Grid == nil {
		return fmt.Errorf("no grid")
	}

	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Dungeon Lab - Screenshot</title>
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
        .subtitle {
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
            line-height: 1.0;
            font-size: 12px;
        }
        .wall { color: #666; }
        .floor { color: #d8b45a; }
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
	fmt.Fprintf(sb, `    <div class="header">%s</div>`+"\n", html.EscapeString(s.Generator.Name()))
	fmt.Fprintf(sb, `    <div class="subtitle">seed %d, %dx%d</div>`+"\n", s.Seed, s.Grid.Width(), s.Grid.Height())

	// Map container
	sb.WriteString(`    <div class="map-container">` + "\n")
	for y := 0; y < s.Grid.Height(); y++ {
		sb.WriteString(`        <div class="map-row">`)
		for x := 0; x < s.Grid.Width(); x++ {
			icon, class := tileHTMLInfo(s.Grid.Cell(x, y))
			fmt.Fprintf(sb, `<span class="%s">%s</span>`, class, icon)
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString(`    </div>` + "\n")

	// Messages
	if len(s.Messages) > 0 {
		sb.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range s.Messages {
			// Strip ANSI codes for HTML output
			fmt.Fprintf(sb, `        <div class="message">%s</div>`+"\n", html.EscapeString(stripANSI(msg)))
		}
		sb.WriteString(`    </div>` + "\n")
	}

	sb.WriteString(`</body>
</html>
`)
	return nil
}

// SaveScreenshotHTML saves the current map as an HTML file and returns its name.
// An empty filename gets a timestamped one.
func SaveScreenshotHTML(s *state.Session, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))
	}

	var sb strings.Builder
	if err := WriteScreenshotHTML(&sb, s); err != nil {
		return "", err
	}
	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// tileHTMLInfo returns the icon and CSS class for a tile
func tileHTMLInfo(t world.Tile) (string, string) {
	if t == world.Floor {
		return renderer.TileIcon(t, false), "floor"
	}
	return renderer.TileIcon(t, false), "wall"
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes terminal color codes from s
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

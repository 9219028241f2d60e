package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	gstyles "github.com/charmbracelet/glamour/styles"
	"github.com/hy4ri/whatsup/internal/tui/styles"
)

const aboutTemplate = `# %s

A small list of things to do, kept on this machine.

## Keys

| Key | Action |
|-----|--------|
| a | add a task and start typing |
| x / space | mark done or not done |
| e / enter | edit the subject |
| enter / esc | stop editing |
| dd | remove the task |
| y | copy the subject |
| t | switch light and dark |
| tab | switch between Tasks and About |
| q | quit |

The mouse works too: click a checkbox, a subject, the ✕ or the + button.

## Storage

Tasks are kept under the key ` + "`tasks`" + ` in the **%s** backend.
Persistence mode: **%s**.
`

// aboutCache keeps the last rendered About page; glamour is slow enough to
// notice on every frame.
type aboutCache struct {
	width int
	dark  bool
	out   string
}

func (r *Renderer) renderAbout(width, height int) string {
	dark := styles.IsDark()
	if r.about.out == "" || r.about.width != width || r.about.dark != dark {
		r.about = aboutCache{width: width, dark: dark, out: r.buildAbout(width, dark)}
	}

	lines := strings.Split(r.about.out, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) buildAbout(width int, dark bool) string {
	md := fmt.Sprintf(aboutTemplate,
		r.Config.UI.Title,
		r.Config.Storage.Backend,
		r.Config.Persistence.Mode,
	)

	style := gstyles.LightStyle
	if dark {
		style = gstyles.DarkStyle
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-2, 0)),
	)
	if err != nil {
		r.Logger.Warn("failed to create markdown renderer", "err", err)
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		r.Logger.Warn("failed to render about page", "err", err)
		return md
	}
	return strings.Trim(out, "\n")
}

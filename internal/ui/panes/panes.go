package panes

// Grid holds calculated dimensions for the inspector's panes.
type Grid struct {
	Width  int
	Height int

	PreviewWidth    int
	SideWidth       int
	InspectorHeight int
	LogHeight       int

	ContentHeight int // height minus status bar

	Stacked bool // narrow terminals stack panels vertically
}

const (
	statusBarHeight = 1
	minSideWidth    = 36
	maxSideWidth    = 54
)

// Calculate computes the pane grid from terminal dimensions.
func Calculate(width, height int) Grid {
	g := Grid{
		Width:         width,
		Height:        height,
		ContentHeight: height - statusBarHeight,
	}

	if g.ContentHeight < 1 {
		g.ContentHeight = 1
	}

	if width < 80 {
		g.Stacked = true
		g.PreviewWidth = width
		g.SideWidth = width
		g.InspectorHeight = g.ContentHeight / 2
		g.LogHeight = g.ContentHeight - g.InspectorHeight
		return g
	}

	g.SideWidth = clamp(width*2/5, minSideWidth, maxSideWidth)
	g.PreviewWidth = width - g.SideWidth
	g.InspectorHeight = clamp(g.ContentHeight/2, 8, 14)
	g.LogHeight = g.ContentHeight - g.InspectorHeight
	return g
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

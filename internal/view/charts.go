package view

import "github.com/GregMSThompson/village-dashboard/internal/models"

// ChartEngine renders chart configurations into chart containers.
type ChartEngine struct {
	name string
}

func NewChartEngine(name string) *ChartEngine {
	return &ChartEngine{name: name}
}

func (e *ChartEngine) Name() string {
	return e.name
}

// Clear empties a container, dropping any previous chart.
func (e *ChartEngine) Clear(c *ChartContainer) {
	c.Config = nil
	c.Engine = ""
}

// Render draws cfg into the container. Every render bumps the revision so
// clients can tell a redraw from a stale chart.
func (e *ChartEngine) Render(c *ChartContainer, cfg models.ChartConfig) {
	c.Config = &cfg
	c.Engine = e.name
	c.Revision++
}

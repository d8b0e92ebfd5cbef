package view

import (
	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/models"
)

// TableEngine manages table widgets inside table containers. Like the grid
// library it stands in for, it refuses to initialize a container twice.
type TableEngine struct{}

func NewTableEngine() *TableEngine {
	return &TableEngine{}
}

func (e *TableEngine) IsTable(c *TableContainer) bool {
	return c.Initialized
}

func (e *TableEngine) Init(c *TableContainer, spec models.TableSpec, rows []models.TableRow) error {
	if c.Initialized {
		return errs.NewTableStateError(c.ID, "cannot reinitialise table")
	}
	c.Initialized = true
	c.Spec = &spec
	c.Rows = append([]models.TableRow(nil), rows...)
	c.Draws = 1
	return nil
}

func (e *TableEngine) Clear(c *TableContainer) error {
	if !c.Initialized {
		return errs.NewTableStateError(c.ID, "table is not initialised")
	}
	c.Rows = nil
	return nil
}

func (e *TableEngine) AddRows(c *TableContainer, rows []models.TableRow) error {
	if !c.Initialized {
		return errs.NewTableStateError(c.ID, "table is not initialised")
	}
	c.Rows = append(c.Rows, rows...)
	return nil
}

func (e *TableEngine) Draw(c *TableContainer) error {
	if !c.Initialized {
		return errs.NewTableStateError(c.ID, "table is not initialised")
	}
	c.Draws++
	return nil
}

// Destroy tears the widget down, leaving an empty container.
func (e *TableEngine) Destroy(c *TableContainer) {
	c.Initialized = false
	c.Spec = nil
	c.Rows = nil
	c.Draws = 0
}

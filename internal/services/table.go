package services

import (
	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/models"
	"github.com/GregMSThompson/village-dashboard/internal/view"
)

type tableRenderer interface {
	IsTable(c *view.TableContainer) bool
	Init(c *view.TableContainer, spec models.TableSpec, rows []models.TableRow) error
	Clear(c *view.TableContainer) error
	AddRows(c *view.TableContainer, rows []models.TableRow) error
	Draw(c *view.TableContainer) error
}

// tableWidget makes table setup idempotent: the first call initializes the
// widget, later calls replace its rows.
type tableWidget struct {
	engine tableRenderer
}

func (w tableWidget) Ensure(c *view.TableContainer, spec models.TableSpec, rows []models.TableRow) error {
	if !w.engine.IsTable(c) {
		return w.engine.Init(c, spec, rows)
	}
	return w.Refresh(c, rows)
}

// Refresh replaces the rows of an initialized table and redraws it.
func (w tableWidget) Refresh(c *view.TableContainer, rows []models.TableRow) error {
	if !w.engine.IsTable(c) {
		return errs.NewTableStateError(c.ID, "table is not initialised")
	}
	if err := w.engine.Clear(c); err != nil {
		return err
	}
	if err := w.engine.AddRows(c, rows); err != nil {
		return err
	}
	return w.engine.Draw(c)
}

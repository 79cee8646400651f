package app

import (
	"github.com/bethropolis/primer/internal/event"
	"github.com/bethropolis/primer/internal/logger"
)

// handleDemoStarted counts and logs demo runs.
func (a *App) handleDemoStarted(e event.Event) bool {
	if data, ok := e.Data.(event.DemoData); ok {
		a.runs++
		logger.DebugTagf("app", "App: demo '%s' started (run #%d)", data.Name, a.runs)
	}
	return false // Not consumed
}

// handleDemoFinished logs successful runs.
func (a *App) handleDemoFinished(e event.Event) bool {
	if data, ok := e.Data.(event.DemoData); ok {
		logger.InfoTagf("app", "App: demo '%s' finished", data.Name)
	}
	return false
}

// handleDemoFailed logs failed runs; main reports them to the user.
func (a *App) handleDemoFailed(e event.Event) bool {
	if data, ok := e.Data.(event.DemoFailedData); ok {
		a.failures++
		logger.Warnf("App: demo '%s' failed: %v", data.Name, data.Err)
	}
	return false
}

// handleRecordsSorted logs completed sorts.
func (a *App) handleRecordsSorted(e event.Event) bool {
	if data, ok := e.Data.(event.RecordsSortedData); ok {
		logger.DebugTagf("record", "App: %d records sorted", data.Count)
	}
	return false
}

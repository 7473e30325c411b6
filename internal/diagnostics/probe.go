// Package diagnostics builds the connectivity report served by GET /test.
package diagnostics

import (
	"context"
	"fmt"

	"github.com/doctorprofile/profile-api/internal/store"
)

const (
	maxCollections = 10
	maxErrorLen    = 50

	statusWorking = "✅ Connected & Working"
)

// Report is the JSON body of the diagnostic route.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Probe inspects handle and never fails: every problem becomes a status string.
// A nil handle means the store was never initialized.
func Probe(ctx context.Context, handle store.Handle, databaseURLSet bool) (rep Report) {
	rep = Report{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	defer func() {
		if r := recover(); r != nil {
			rep.Database = "❌ Error: " + Truncate(fmt.Sprint(r), maxErrorLen)
		}
	}()

	if handle == nil {
		rep.Database = "⚠️  Available but not initialized"
		return rep
	}

	rep.Database = "✅ Available"
	urlStatus := "❌ Not Set"
	if databaseURLSet {
		urlStatus = "✅ Set"
	}
	rep.DatabaseURL = &urlStatus
	name := handle.Name()
	if name == "" {
		name = "✅ Connected"
	}
	rep.DatabaseName = &name
	rep.ConnectionStatus = "Connected"

	names, err := handle.ListCollectionNames(ctx)
	if err != nil {
		rep.Database = "⚠️  Connected but Error: " + Truncate(err.Error(), maxErrorLen)
		return rep
	}
	if len(names) > maxCollections {
		names = names[:maxCollections]
	}
	rep.Collections = append(rep.Collections, names...)
	rep.Database = statusWorking
	return rep
}

// Working reports whether the probe reached the database and listed its collections.
func (r Report) Working() bool {
	return r.Database == statusWorking
}

// Truncate shortens s to at most n characters without splitting a rune.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

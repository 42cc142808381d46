package formatter

import (
	"time"

	"github.com/alexanderramin/larder/internal/repository"
)

// FormatStorageEntries lists stored documents with size and age.
func FormatStorageEntries(entries []repository.Entry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("Storage is empty.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{Bold(e.Key), FormatBytes(e.SizeBytes), Dim(HumanTimestamp(e.UpdatedAt, now))})
	}
	return RenderTable([]string{"KEY", "SIZE", "UPDATED"}, rows)
}

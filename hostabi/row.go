package hostabi

// NullableTimestamp represents a single host row's timestamp column,
// which may be SQL NULL (§6.1 "rows may be invalid (null)").
type NullableTimestamp struct {
	Us    int64
	Valid bool
}

// FilterNullTimestamps drops rows whose timestamp is null (§6.1, §7
// error kind 3: "null input rows are skipped silently during update").
// Callers pass row timestamps alongside a same-length slice of
// arbitrary per-row payloads and get back only the rows that survive.
func FilterNullTimestamps[T any](timestamps []NullableTimestamp, rows []T) ([]int64, []T) {
	outTs := make([]int64, 0, len(rows))
	outRows := make([]T, 0, len(rows))
	for i, ts := range timestamps {
		if !ts.Valid {
			continue
		}
		outTs = append(outTs, ts.Us)
		outRows = append(outRows, rows[i])
	}
	return outTs, outRows
}

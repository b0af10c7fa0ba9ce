package state

// ClampCursor keeps a row cursor inside [0, size).
func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// TableRowBudget is the number of product rows that fit on screen below the
// header, search box, pagination bar and status lines.
func TableRowBudget(height int, searching bool) int {
	if height <= 0 {
		return 50
	}
	chrome := 11
	if searching {
		chrome++
	}
	rows := height - chrome
	if rows < 3 {
		rows = 3
	}
	return rows
}

// CenteredWindow returns the [start, end) slice of rows to draw so that the
// cursor stays near the middle when rows exceed height.
func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

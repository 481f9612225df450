package interpret

import "fmt"

// AddOption appends "Option N"/"optionN" to the encoded options.
func AddOption(raw string) string {
	options := ParseOptions(raw)
	n := len(options) + 1
	options = append(options, Option{
		Label: fmt.Sprintf("Option %d", n),
		Value: fmt.Sprintf("option%d", n),
	})
	return EncodeOptions(options)
}

// RemoveOption drops the option at index. Out of range indexes leave the
// list unchanged.
func RemoveOption(raw string, index int) string {
	options := ParseOptions(raw)
	if index < 0 || index >= len(options) {
		return EncodeOptions(options)
	}
	options = append(options[:index:index], options[index+1:]...)
	return EncodeOptions(options)
}

// AddColumn appends a column with a fresh id and gives every row an empty
// cell for it.
func AddColumn(columns, rows string) (string, string) {
	table := ParseTable(columns, rows)
	taken := make(map[string]struct{}, len(table.Columns))
	for _, col := range table.Columns {
		taken[col.ID] = struct{}{}
	}
	n := len(table.Columns) + 1
	id := fmt.Sprintf("column%d", n)
	for {
		if _, ok := taken[id]; !ok {
			break
		}
		n++
		id = fmt.Sprintf("column%d", n)
	}
	table.Columns = append(table.Columns, Column{ID: id, Title: fmt.Sprintf("Column %d", n), Width: 100})
	for i, row := range table.Rows {
		next := make(Row, len(row)+1)
		for k, v := range row {
			next[k] = v
		}
		next[id] = ""
		table.Rows[i] = next
	}
	return EncodeColumns(table.Columns), EncodeRows(table.Rows)
}

// RemoveColumn drops the column at index along with its cells.
func RemoveColumn(columns, rows string, index int) (string, string) {
	table := ParseTable(columns, rows)
	if index < 0 || index >= len(table.Columns) {
		return EncodeColumns(table.Columns), EncodeRows(table.Rows)
	}
	id := table.Columns[index].ID
	table.Columns = append(table.Columns[:index:index], table.Columns[index+1:]...)
	for i, row := range table.Rows {
		next := make(Row, len(row))
		for k, v := range row {
			if k != id {
				next[k] = v
			}
		}
		table.Rows[i] = next
	}
	return EncodeColumns(table.Columns), EncodeRows(table.Rows)
}

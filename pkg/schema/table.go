package schema

import (
	"fmt"
	"sort"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Table maps a column name to the cells in that column, top to bottom
type Table map[string][]string

// TableAnswer is the answer to a question about a table
type TableAnswer struct {
	Answer      string   `json:"answer"`
	Coordinates [][]int  `json:"coordinates"`
	Cells       []string `json:"cells"`
	Aggregator  string   `json:"aggregator"`
}

// TableView implements table.TableData for a table of columns
type TableView Table

// CellTable implements table.TableData for the matched cells of an answer
type CellTable TableAnswer

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t TableAnswer) String() string {
	return Stringify(t)
}

func (t Table) String() string {
	return Stringify(t)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Columns returns the column names in sorted order
func (t Table) Columns() []string {
	columns := make([]string, 0, len(t))
	for name := range t {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	return columns
}

// Rows returns the number of rows, which is the length of the longest column
func (t Table) Rows() int {
	var n int
	for _, cells := range t {
		n = max(n, len(cells))
	}
	return n
}

///////////////////////////////////////////////////////////////////////////////
// TABLE VIEW

func (t TableView) Header() []string {
	return Table(t).Columns()
}

func (t TableView) Len() int {
	return Table(t).Rows()
}

func (t TableView) Row(i int) []any {
	columns := Table(t).Columns()
	row := make([]any, len(columns))
	for j, name := range columns {
		if cells := t[name]; i < len(cells) {
			row[j] = cells[i]
		}
	}
	return row
}

///////////////////////////////////////////////////////////////////////////////
// CELL TABLE

func (t CellTable) Header() []string {
	return []string{"CELL", "ROW", "COLUMN"}
}

func (t CellTable) Len() int {
	return len(t.Cells)
}

func (t CellTable) Row(i int) []any {
	row, col := "-", "-"
	if i < len(t.Coordinates) && len(t.Coordinates[i]) == 2 {
		row, col = fmt.Sprint(t.Coordinates[i][0]), fmt.Sprint(t.Coordinates[i][1])
	}
	return []any{t.Cells[i], row, col}
}

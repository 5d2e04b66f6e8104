package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TokenTable implements table.TableData for ranked mask fill tokens
type TokenTable []string

///////////////////////////////////////////////////////////////////////////////
// TOKEN TABLE

func (t TokenTable) Header() []string {
	return []string{"RANK", "TOKEN"}
}

func (t TokenTable) Len() int {
	return len(t)
}

func (t TokenTable) Row(i int) []any {
	return []any{i + 1, t[i]}
}

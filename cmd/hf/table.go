package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	huggingface "github.com/mutablelogic/go-huggingface"
	schema "github.com/mutablelogic/go-huggingface/pkg/schema"
	uitable "github.com/mutablelogic/go-huggingface/pkg/ui/table"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type TableCmd struct {
	Query   string   `arg:"" help:"Question about the table"`
	Columns []string `name:"column" short:"c" sep:"none" help:"Column as name=cell,cell,... (repeatable)" optional:""`
	File    string   `name:"file" type:"existingfile" help:"JSON file mapping column names to cells" optional:""`
	Sep     string   `name:"sep" default:"," help:"Separator between cells in --column"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *TableCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	table, err := cmd.table()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "TableCommand",
		attribute.String("query", cmd.Query),
		attribute.StringSlice("columns", table.Columns()),
	)
	defer func() { endSpan(err) }()

	answer, err := client.TableAnswer(parent, cmd.Query, table)
	if err != nil {
		return err
	}

	if ctx.Debug {
		fmt.Println(answer)
		return nil
	}
	if ctx.Verbose {
		fmt.Println(uitable.Render(schema.TableView(table)))
	}
	if len(answer.Cells) > 0 {
		fmt.Println(uitable.Render(schema.CellTable(answer)))
	}
	if answer.Aggregator != "" && answer.Aggregator != "NONE" {
		fmt.Printf("%s (%s)\n", answer.Answer, answer.Aggregator)
	} else {
		fmt.Println(answer.Answer)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// table returns the table from the file and column flags, where columns
// replace any column of the same name in the file
func (cmd *TableCmd) table() (schema.Table, error) {
	table := make(schema.Table)
	if cmd.File != "" {
		data, err := os.ReadFile(cmd.File)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, huggingface.ErrBadParameter.Withf("%s: %v", cmd.File, err)
		}
	}
	for _, column := range cmd.Columns {
		name, cells, err := parseColumn(column, cmd.Sep)
		if err != nil {
			return nil, err
		}
		table[name] = cells
	}
	if len(table) == 0 {
		return nil, huggingface.ErrBadParameter.With("no table, use --column or --file")
	}
	return table, nil
}

// parseColumn parses name=cell,cell,... into a column name and its cells
func parseColumn(value, sep string) (string, []string, error) {
	name, cells, ok := strings.Cut(value, "=")
	if name = strings.TrimSpace(name); !ok || name == "" {
		return "", nil, huggingface.ErrBadParameter.Withf("invalid column %q, expected name=cell%scell", value, sep)
	}
	if sep == "" {
		return name, []string{cells}, nil
	}
	result := strings.Split(cells, sep)
	for i := range result {
		result[i] = strings.TrimSpace(result[i])
	}
	return name, result, nil
}

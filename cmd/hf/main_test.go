package main

import (
	"os"
	"path/filepath"
	"testing"

	// Packages
	huggingface "github.com/mutablelogic/go-huggingface"
	schema "github.com/mutablelogic/go-huggingface/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_table_001(t *testing.T) {
	tests := []struct {
		value  string
		sep    string
		name   string
		expect []string
	}{
		{"Stars=36542,4512,3934", ",", "Stars", []string{"36542", "4512", "3934"}},
		{" Repository = Transformers, Datasets ", ",", "Repository", []string{"Transformers", "Datasets"}},
		{"Programming language=Python|Python|Rust, Python and NodeJS", "|", "Programming language", []string{"Python", "Python", "Rust, Python and NodeJS"}},
		{"Empty=", ",", "Empty", []string{""}},
		{"Whole=a,b", "", "Whole", []string{"a,b"}},
		{"Expr=a=b", ",", "Expr", []string{"a=b"}},
	}
	for _, tt := range tests {
		name, cells, err := parseColumn(tt.value, tt.sep)
		assert.NoError(t, err, tt.value)
		assert.Equal(t, tt.name, name, tt.value)
		assert.Equal(t, tt.expect, cells, tt.value)
	}
}

func Test_table_002(t *testing.T) {
	// Invalid columns are bad parameters
	for _, value := range []string{"Stars", "=1,2", " =1"} {
		_, _, err := parseColumn(value, ",")
		assert.ErrorIs(t, err, huggingface.ErrBadParameter, value)
	}
}

func Test_table_003(t *testing.T) {
	// Columns replace columns of the same name in the file
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "table.json")
	assert.NoError(os.WriteFile(path, []byte(`{"Stars":["1","2"],"Repository":["Transformers","Datasets"]}`), 0600))

	cmd := TableCmd{File: path, Columns: []string{"Stars=36542,4512"}, Sep: ","}
	table, err := cmd.table()
	assert.NoError(err)
	assert.Equal(schema.Table{
		"Stars":      {"36542", "4512"},
		"Repository": {"Transformers", "Datasets"},
	}, table)
}

func Test_table_004(t *testing.T) {
	assert := assert.New(t)

	// No table
	_, err := (&TableCmd{Sep: ","}).table()
	assert.ErrorIs(err, huggingface.ErrBadParameter)

	// File is not JSON
	path := filepath.Join(t.TempDir(), "table.json")
	assert.NoError(os.WriteFile(path, []byte(`Stars: 1`), 0600))
	_, err = (&TableCmd{File: path, Sep: ","}).table()
	assert.ErrorIs(err, huggingface.ErrBadParameter)
}

func Test_util_001(t *testing.T) {
	assert := assert.New(t)
	text, err := readArg("plain text")
	assert.NoError(err)
	assert.Equal("plain text", text)

	path := filepath.Join(t.TempDir(), "article.txt")
	assert.NoError(os.WriteFile(path, []byte("article"), 0600))
	text, err = readArg("@" + path)
	assert.NoError(err)
	assert.Equal("article", text)

	_, err = readArg("@" + filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(err, huggingface.ErrNotFound)
}

func Test_client_001(t *testing.T) {
	// A missing API key is a bad parameter
	assert := assert.New(t)
	_, err := (&Globals{}).Client()
	assert.ErrorIs(err, huggingface.ErrBadParameter)

	g := Globals{HuggingFace: HuggingFace{ApiKey: "test-key", Endpoint: "http://localhost:8080/models"}}
	c, err := g.Client()
	assert.NoError(err)
	assert.NotNil(c)
}

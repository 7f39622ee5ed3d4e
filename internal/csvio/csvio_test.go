package csvio

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record []string

func (r record) Row() []string { return r }

func TestWriterReaderRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "out.csv")
	header := []string{"id", "name", "amount"}

	w, err := NewWriter(path, header)
	require.NoError(t, err, "writer creates missing directories")
	require.NoError(t, w.Write([]string{"1", "Harbor Grill", "12.50"}))
	require.NoError(t, w.Write([]string{"2", "Cedar Kitchen, Inc.", "9.99"}))
	assert.Equal(t, 2, w.Rows())
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, header, r.Header())

	row, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "Harbor Grill", "12.50"}, row)

	row, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "Cedar Kitchen, Inc.", "9.99"}, row, "quoting survives the roundtrip")

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestWriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")

	rows, err := WriteTable(path, []string{"a", "b"}, []record{{"1", "x"}, {"2", "y"}, {"3", "z"}})
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "a,b", lines[0])
}

func TestConcat(t *testing.T) {
	dir := t.TempDir()
	header := []string{"id", "value"}

	a := filepath.Join(dir, "a.csv")
	_, err := WriteTable(a, header, []record{{"1", "one"}, {"2", "two"}})
	require.NoError(t, err)

	b := filepath.Join(dir, "b.csv")
	_, err = WriteTable(b, header, []record{{"3", "three"}})
	require.NoError(t, err)

	combined := filepath.Join(dir, "all.csv")
	rows, err := Concat(combined, header, []string{a, b})
	require.NoError(t, err)
	assert.Equal(t, 3, rows, "source headers are not copied as data")

	r, err := OpenReader(combined)
	require.NoError(t, err)
	defer r.Close()

	var ids []string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		ids = append(ids, row[0])
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids, "source order is preserved")
}

func TestOpenReaderMissingFile(t *testing.T) {
	_, err := OpenReader(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

package mem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grovedb/go-sql-format/sql"
)

func TestTableInsertAndIter(t *testing.T) {
	require := require.New(t)

	table := NewTable("test", sql.Schema{
		{Name: "number", Type: sql.Int64},
		{Name: "label", Type: sql.Text, Nullable: true},
	})
	require.Equal("test", table.Name())

	require.NoError(table.Insert(int64(1), "one"))
	require.NoError(table.Insert(int64(2), nil))

	err := table.Insert(int64(3))
	require.Error(err)
	require.True(sql.ErrUnexpectedRowLength.Is(err))

	err = table.Insert("not a number", "three")
	require.Error(err)
	require.True(sql.ErrInvalidType.Is(err))

	err = table.Insert(nil, "three")
	require.Error(err)
	require.True(sql.ErrInvalidType.Is(err))

	iter, err := table.RowIter(sql.NewEmptyContext())
	require.NoError(err)

	rows, err := sql.RowIterToRows(iter)
	require.NoError(err)
	require.Equal([]sql.Row{
		sql.NewRow(int64(1), "one"),
		sql.NewRow(int64(2), nil),
	}, rows)
}

func TestNumberSequence(t *testing.T) {
	require := require.New(t)

	table := NewNumberSequence("numbers", 3)
	require.Equal(sql.Schema{{Name: "number", Type: sql.Int64}}, table.Schema())

	iter, err := table.RowIter(sql.NewEmptyContext())
	require.NoError(err)

	rows, err := sql.RowIterToRows(iter)
	require.NoError(err)
	require.Equal([]sql.Row{
		sql.NewRow(int64(0)),
		sql.NewRow(int64(1)),
		sql.NewRow(int64(2)),
	}, rows)
}

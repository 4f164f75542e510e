package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE menus (menu_id INTEGER PRIMARY KEY, menu_name TEXT NOT NULL, stock_qty INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "menus")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["menu_id"].Type)
	assert.Equal(t, "PRI", colMap["menu_id"].Key)
	assert.Equal(t, "text", colMap["menu_name"].Type)
	assert.Equal(t, "NO", colMap["menu_name"].Null)
	assert.Equal(t, "integer", colMap["stock_qty"].Type)

	// PRAGMA table_info returns no rows for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

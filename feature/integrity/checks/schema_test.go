package checks

import (
	"testing"

	"menu-manager/core/database/dbtest"
	"menu-manager/feature/menus/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, models.All())
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_MissingColumn(t *testing.T) {
	db, mock := dbtest.Mock(t)

	rows := columnRows().
		AddRow("mealtime_id", "int(10) unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("mealtime_name", "varchar(128)", "NO", "", nil, "").
		AddRow("start_time", "varchar(8)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `mealtimes`").WillReturnRows(rows)

	report, err := CheckSchema(db, []any{&models.Mealtime{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl, ok := report.Tables["mealtimes"]
	require.True(t, ok)
	assert.Equal(t, "error", tbl.Status)
	assert.ElementsMatch(t, []string{"end_time", "mealtime_status"}, tbl.MissingColumns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema_TypeMismatch(t *testing.T) {
	db, mock := dbtest.Mock(t)

	rows := columnRows().
		AddRow("special_id", "int(10) unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("menu_id", "int(10) unsigned", "NO", "UNI", nil, "").
		AddRow("start_date", "date", "YES", "", nil, "").
		AddRow("end_date", "date", "YES", "", nil, "").
		AddRow("special_price", "int(11)", "NO", "", nil, "").
		AddRow("special_status", "tinyint(1)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `menus_specials`").WillReturnRows(rows)

	report, err := CheckSchema(db, []any{&models.Special{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["menus_specials"]
	assert.Empty(t, tbl.MissingColumns)
	assert.Equal(t, []string{"special_price: expected decimal(15,4), got int(11)"}, tbl.TypeMismatches)
}

func TestCheckSchema_InspectError(t *testing.T) {
	db, mock := dbtest.Mock(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `mealtimes`").WillReturnError(assert.AnError)

	report, err := CheckSchema(db, []any{&models.Mealtime{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 1)
	assert.Empty(t, report.Tables)
}

func TestCheckSchema_SQLite(t *testing.T) {
	db := dbtest.SQLite(t)

	t.Run("Missing tables", func(t *testing.T) {
		report, err := CheckSchema(db, []any{&models.Menu{}})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, "missing", report.Tables["menus"].Status)
	})

	t.Run("Migrated schema matches", func(t *testing.T) {
		require.NoError(t, models.Migrate(db))

		report, err := CheckSchema(db, models.All())
		require.NoError(t, err)
		assert.True(t, report.Matched, "%+v", report)
		assert.Len(t, report.Tables, len(models.All()))
		for name, tbl := range report.Tables {
			assert.Equal(t, "ok", tbl.Status, name)
		}
	})
}

package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataSourceRepository_Exists(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{name: "data_source cadastrada", exists: true},
		{name: "data_source inexistente", exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			repo := NewDataSourceRepository(conn)

			mock.ExpectQuery(`SELECT EXISTS\( SELECT 1 FROM data_source ds WHERE ds\.source_id = \$1 \)`).
				WithArgs("7").
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			exists, err := repo.Exists(context.Background(), "7")

			require.NoError(t, err)
			assert.Equal(t, tt.exists, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDataSourceRepository_List(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewDataSourceRepository(conn)

	mock.ExpectQuery(`SELECT ds\.source_id FROM data_source ds ORDER BY ds\.source_id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"source_id"}).AddRow("1").AddRow("2"))

	sources, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "1", sources[0].ID)
	assert.Equal(t, "2", sources[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDataSourceRepository_ListEmpty(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewDataSourceRepository(conn)

	mock.ExpectQuery(`FROM data_source ds`).
		WillReturnRows(sqlmock.NewRows([]string{"source_id"}))

	sources, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, sources)
	assert.NotNil(t, sources)
}

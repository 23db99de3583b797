package store_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"realestatedb/internal/store"
)

// setupMockStore backs the store with a mocked MySQL connection so
// transport failures can be injected without a real server.
func setupMockStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	return store.New(db, nil), mock
}

func TestGetPropertyReportsConnectivityFailure(t *testing.T) {
	s, mock := setupMockStore(t)

	netErr := &net.OpError{Op: "read", Err: errors.New("connection reset by peer")}
	mock.ExpectQuery("SELECT (.+) FROM `properties`").WillReturnError(netErr)

	_, err := s.GetProperty(context.Background(), 1)
	var connErr *store.ConnectivityError
	assert.ErrorAs(t, err, &connErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

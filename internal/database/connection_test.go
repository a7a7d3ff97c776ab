package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/javajoker/store-admin/internal/database/databasetest"
)

func TestWithTransaction_Commit(t *testing.T) {
	db, mock := databasetest.New(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE orders SET is_paid = true`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := WithTransaction(db, func(tx *gorm.DB) error {
		return tx.Exec("UPDATE orders SET is_paid = true").Error
	})
	assert.NoError(t, err)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db, mock := databasetest.New(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := WithTransaction(db, func(tx *gorm.DB) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestWithTransaction_RollbackOnPanic(t *testing.T) {
	db, mock := databasetest.New(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = WithTransaction(db, func(tx *gorm.DB) error {
			panic("kaboom")
		})
	})
}

func TestGormConfig_LogLevels(t *testing.T) {
	for _, level := range []string{"info", "warn", "error", "silent", ""} {
		assert.NotNil(t, gormConfig(level).Logger, level)
	}
}

// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// unreachableDB opens a gorm handle whose statements all fail at exec time,
// without touching a real database at open time.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		postgres.Open("host=127.0.0.1 port=1 user=test dbname=test sslmode=disable connect_timeout=1"),
		&gorm.Config{
			DisableAutomaticPing: true,
			Logger:               gormlogger.Discard,
		},
	)
	require.NoError(t, err)
	return db
}

func TestIncrementViewCountLogsFailure(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	s := NewCatalogService(unreachableDB(t))
	s.incrementViewCount("0b2f1c3a-0000-0000-0000-000000000000")

	require.NotEmpty(t, hook.Entries)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Failed to increment product view count", entry.Message)
	assert.NotNil(t, entry.Data[logrus.ErrorKey])
}

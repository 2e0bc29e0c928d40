package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "app.db?_pragma=busy_timeout(5000)", sqliteDSN("app.db"))
	assert.Equal(t, "app.db?cache=shared&_pragma=busy_timeout(5000)", sqliteDSN("app.db?cache=shared"))
}

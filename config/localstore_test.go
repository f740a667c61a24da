package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figliolo/bar-client/models"
)

func TestConnectLocalStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar-client.db")

	db, err := ConnectLocalStore(path)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CartLine{}, &models.Preference{}))

	line := models.CartLine{Owner: "local", Turno: 1, ProductID: 7, Quantity: 2}
	require.NoError(t, db.Create(&line).Error)

	var reloaded models.CartLine
	require.NoError(t, db.First(&reloaded, line.ID).Error)
	assert.Equal(t, 7, reloaded.ProductID)
	assert.Equal(t, 2, reloaded.Quantity)
}

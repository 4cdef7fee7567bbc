package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsOriginList(t *testing.T) {
	assert.Equal(t, []string{"*"}, Config{}.CorsOriginList())
	assert.Equal(t, []string{"*"}, Config{CorsOrigins: " , "}.CorsOriginList())
	assert.Equal(t,
		[]string{"http://localhost:5173", "https://desk.example.com"},
		Config{CorsOrigins: "http://localhost:5173, https://desk.example.com,"}.CorsOriginList(),
	)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	// t.Setenv restores the original value after the test.
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	_, _, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 12, cfg.JWTExpiryHours)
	assert.Equal(t, "Rs.", cfg.CurrencySymbol)
}

func TestResolveMySQLDSN(t *testing.T) {
	dsn, name, err := ResolveMySQLDSN(Config{
		DBUser: "root", DBPass: "pw", DBHost: "db", DBPort: "3306", DBName: "hotel_db",
	})
	require.NoError(t, err)
	assert.Equal(t, "hotel_db", name)
	assert.Equal(t, "root:pw@tcp(db:3306)/hotel_db?loc=Local&parseTime=true&charset=utf8mb4", dsn)

	dsn, name, err = ResolveMySQLDSN(Config{MySQLURL: "mysql://u:p@mysql.internal:3307/frontdesk"})
	require.NoError(t, err)
	assert.Equal(t, "frontdesk", name)
	assert.True(t, strings.HasPrefix(dsn, "u:p@tcp(mysql.internal:3307)/frontdesk?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")

	dsn, _, err = ResolveMySQLDSN(Config{DatabaseURL: "mysql://u:p@host/hotel?parseTime=false&charset=latin1"})
	require.NoError(t, err)
	assert.NotContains(t, dsn, "parseTime")
	assert.Contains(t, dsn, "charset=latin1")
	assert.Contains(t, dsn, "tcp(host:3306)")

	_, _, err = ResolveMySQLDSN(Config{DatabaseURL: "mysql://u:p@host/"})
	assert.Error(t, err)

	_, _, err = ResolveMySQLDSN(Config{DatabaseURL: "mysql://u:p@host/hotel?loc=Nowhere/Invalid"})
	assert.Error(t, err)

	dsn, name, err = ResolveMySQLDSN(Config{DatabaseURL: "u:p@tcp(h:3306)/x", DBName: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "u:p@tcp(h:3306)/x", dsn)
	assert.Equal(t, "x", name)
}

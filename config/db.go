package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hotel-frontdesk/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	demoStaffUsername = "admin"
	demoStaffPassword = "admin123"
)

// SeedDatabase fills an empty database with a demo staff account and a
// handful of rooms. It does nothing unless demo seeding is switched on, so a
// production deploy never ships a known credential.
func SeedDatabase(db *gorm.DB, log *zap.Logger, demo bool) error {
	if !demo {
		return nil
	}

	// ---------------- Staff ----------------
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoStaffPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash demo staff password: %w", err)
		}
		user := models.User{Username: demoStaffUsername, Password: string(hash)}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("create demo staff user: %w", err)
		}
		log.Warn("demo staff user seeded, do not use in production", zap.String("username", user.Username))
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	if err := db.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		return fmt.Errorf("count rooms: %w", err)
	}
	if roomCount > 0 {
		log.Info("rooms already seeded")
		return nil
	}

	rooms := []models.Room{
		{RoomNumber: "101", RoomType: "Single", Price: 1000, Available: true},
		{RoomNumber: "102", RoomType: "Single", Price: 1200, Available: true},
		{RoomNumber: "201", RoomType: "Double", Price: 1800, Available: true},
		{RoomNumber: "202", RoomType: "Double", Price: 2000, Available: true},
		{RoomNumber: "301", RoomType: "Suite", Price: 4500, Available: true},
	}
	if err := db.Create(&rooms).Error; err != nil {
		return fmt.Errorf("seed rooms: %w", err)
	}
	log.Info("rooms seeded", zap.Int("count", len(rooms)))
	return nil
}

// dsnConfig is the driver config every DSN source is folded into.
func dsnConfig(user, pass, host, port, dbName string) *mysqldriver.Config {
	if port == "" {
		port = "3306"
	}

	c := mysqldriver.NewConfig()
	c.User = user
	c.Passwd = pass
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(host, port)
	c.DBName = dbName
	c.ParseTime = true
	c.Loc = time.Local
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c
}

// applyURLQuery lets mysql:// URLs override the defaults set by dsnConfig.
func applyURLQuery(c *mysqldriver.Config, q url.Values) error {
	for key := range q {
		value := q.Get(key)
		switch key {
		case "parseTime":
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid parseTime %q: %w", value, err)
			}
			c.ParseTime = parsed
		case "loc":
			loc, err := time.LoadLocation(value)
			if err != nil {
				return fmt.Errorf("invalid loc %q: %w", value, err)
			}
			c.Loc = loc
		default:
			c.Params[key] = value
		}
	}
	return nil
}

// ResolveMySQLDSN picks the DSN from MYSQL_URL, then DATABASE_URL, then DB_*
// parts, and returns it with the database name.
func ResolveMySQLDSN(cfg Config) (string, string, error) {
	raw := strings.TrimSpace(cfg.MySQLURL)
	if raw == "" {
		raw = strings.TrimSpace(cfg.DatabaseURL)
	}

	switch {
	case raw == "":
		c := dsnConfig(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return c.FormatDSN(), cfg.DBName, nil

	case strings.HasPrefix(raw, "mysql://"):
		u, err := url.Parse(raw)
		if err != nil {
			return "", "", err
		}
		dbName := strings.TrimPrefix(u.Path, "/")
		if dbName == "" {
			return "", "", fmt.Errorf("mysql url missing database name")
		}

		pass, _ := u.User.Password()
		c := dsnConfig(u.User.Username(), pass, u.Hostname(), u.Port(), dbName)
		if err := applyURLQuery(c, u.Query()); err != nil {
			return "", "", err
		}
		return c.FormatDSN(), dbName, nil

	default:
		// already a driver DSN
		c, err := mysqldriver.ParseDSN(raw)
		if err != nil {
			return "", "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		return raw, c.DBName, nil
	}
}

func ConnectDatabase(cfg Config, log *zap.Logger) (*gorm.DB, error) {
	dsn, dbName, err := ResolveMySQLDSN(cfg)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if cfg.GinMode == "debug" {
		level = logger.Info
	}
	gormLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	// Every write path opens its own transaction explicitly.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("cannot get raw sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("database connected", zap.String("database", dbName))

	// parent -> child order
	if err := db.AutoMigrate(
		&models.User{},
		&models.RevokedToken{},
		&models.Guest{},
		&models.Room{},
		&models.Reservation{},
		&models.RoomService{},
		&models.Billing{},
	); err != nil {
		return nil, err
	}

	if err := SeedDatabase(db, log, cfg.SeedDemo); err != nil {
		log.Warn("seeding skipped", zap.Error(err))
	}
	return db, nil
}

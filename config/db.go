package config

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-manager/models"
)

// DB is the checkout archive; nil when the archive is off.
var DB *gorm.DB

// ArchiveDialect names the database behind an archive DSN.
type ArchiveDialect string

const (
	DialectNone     ArchiveDialect = ""
	DialectSQLite   ArchiveDialect = "sqlite"
	DialectMySQL    ArchiveDialect = "mysql"
	DialectPostgres ArchiveDialect = "postgres"
)

// ResolveArchiveDSN turns HMS_ARCHIVE_DSN into a dialect and a driver DSN.
// "off", "none" or "" disable the archive.
func ResolveArchiveDSN(raw string) (ArchiveDialect, string, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "off", "none", "disabled":
		return DialectNone, "", nil
	}

	switch {
	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite archive url missing path")
		}
		return DialectSQLite, path, nil
	case strings.HasPrefix(raw, "mysql://"):
		dsn, err := mysqlDSNFromURL(raw)
		return DialectMySQL, dsn, err
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DialectPostgres, raw, nil
	}
	return "", "", fmt.Errorf("unsupported archive dsn %q (want sqlite://, mysql://, postgres:// or off)", raw)
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}
	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	cfg := mysqldriver.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(u.Hostname(), port)
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local

	params := map[string]string{"charset": "utf8mb4"}
	for k, v := range u.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	delete(params, "parseTime")
	delete(params, "loc")
	cfg.Params = params

	return cfg.FormatDSN(), nil
}

// ConnectDatabase opens the archive named by rawDSN, migrates it and sets DB.
// A disabled archive leaves DB nil and is not an error. gorm logs go to logOut,
// or stderr when logOut is nil.
func ConnectDatabase(rawDSN string, logOut io.Writer) error {
	dialect, dsn, err := ResolveArchiveDSN(rawDSN)
	if err != nil {
		return err
	}

	var dialector gorm.Dialector
	switch dialect {
	case DialectNone:
		DB = nil
		return nil
	case DialectSQLite:
		dialector = sqlite.Open(dsn)
	case DialectMySQL:
		dialector = mysql.Open(dsn)
	case DialectPostgres:
		dialector = postgres.Open(dsn)
	}

	if logOut == nil {
		logOut = os.Stderr
	}
	newLogger := logger.New(
		log.New(logOut, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&models.Receipt{}); err != nil {
		return err
	}

	DB = db
	return nil
}

// CloseDatabase releases the archive connection, if any.
func CloseDatabase() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	DB = nil
	return sqlDB.Close()
}

package mysql

import (
	"errors"
	"fmt"
	"time"

	"flower-shop-service/src/pkg/log"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
}

type DB struct {
	db *sqlx.DB
}

func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	cfg := mysql.Config{
		User:                 v.GetString("mysql.user"),
		Passwd:               v.GetString("mysql.password"),
		Net:                  "tcp",
		Addr:                 fmt.Sprintf("%s:%d", v.GetString("mysql.host"), v.GetInt("mysql.port")),
		DBName:               v.GetString("mysql.name"),
		ParseTime:            true,
		AllowNativePasswords: true,
	}

	db, err := sqlx.Connect("mysql", cfg.FormatDSN())
	if err != nil {
		logger.Error("mysql-init", err.Error(), "connect", cfg.Addr)
		return nil, err
	}

	db.SetMaxOpenConns(v.GetInt("mysql.max_open_conns"))
	db.SetMaxIdleConns(v.GetInt("mysql.max_idle_conns"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("mysql.conn_max_lifetime_minutes")) * time.Minute)

	logger.Info("mysql-init", "connected to database", "connect", cfg.DBName)
	return &DB{db: db}, nil
}

func (d *DB) GetDB() (*sqlx.DB, error) {
	if d == nil || d.db == nil {
		return nil, errors.New("database connection is not initialized")
	}
	return d.db, nil
}

// IsDuplicateEntry reports whether err is a MySQL duplicate-key violation (1062).
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}

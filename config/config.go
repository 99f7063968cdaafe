package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database handle for the whole process. The default is
// a single SQLite file next to the binary; DB_DRIVER=mysql switches to a
// MySQL server for deployments that outgrow the file.
func InitDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_HOST", "127.0.0.1"),
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "rentster"),
		)
		dialector = mysql.Open(dsn)
	default:
		dialector = sqlite.Open(getEnv("RENTSTER_DB_PATH", "rentster.db"))
	}

	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package db

import (
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SHAIK-RUMEENA/PostBloging/models"
	"github.com/SHAIK-RUMEENA/PostBloging/utils"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, relying on the system environment")
	}

	config := &gorm.Config{
		Logger: utils.GetGormLogger(),
	}

	DB = openDatabase(config)

	err := DB.AutoMigrate(
		&models.User{},
		&models.Post{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	utils.LogSuccess("Database connection successful")
}

// openDatabase connects to Postgres when DB_URL is set and reachable, and
// otherwise falls back to a local sqlite file for development. gorm.Open can
// hand back a handle together with an error, so the fallback keys on the
// error and a ping rather than on a nil connection.
func openDatabase(config *gorm.Config) *gorm.DB {
	if dsn := os.Getenv("DB_URL"); dsn != "" {
		conn, err := gorm.Open(postgres.Open(dsn), config)
		if err == nil {
			err = pingDatabase(conn)
		}
		if err == nil {
			return conn
		}
		utils.LogError(err, "Error connecting to the database, falling back to a local sqlite file")
	}

	conn, err := gorm.Open(sqlite.Open("postblog.db"), config)
	if err != nil {
		utils.LogError(err, "Error opening the fallback database")
		panic("Could not connect to the database")
	}
	return conn
}

func pingDatabase(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

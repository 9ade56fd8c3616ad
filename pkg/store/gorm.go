package store

import (
	"context"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/vitals-monitor-service/pkg/common"
	"liyu1981.xyz/vitals-monitor-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

func GetInstance(dialector gorm.Dialector) *DB {
	logger := common.GetLoggerWith(common.LoggerNameStore)
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		if err := instance.Conn.AutoMigrate(&models.Setting{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

func UseSqliteDialector() gorm.Dialector {
	dbPath, found := os.LookupEnv(common.EnvKeyMonitorDbPath)
	if !found {
		dbPath = "vitals.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

type GormStore struct {
	db *DB
}

func NewGormStore(db *DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	// a missing key is the normal first-run path, so avoid First and the
	// record-not-found error it logs
	var setting models.Setting
	result := s.db.Conn.WithContext(ctx).Where("setting_key = ?", key).Limit(1).Find(&setting)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", ErrNotFound
	}
	return setting.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameStore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStoreSetting),
	)

	setting := models.Setting{Key: key, Value: value}
	err := s.db.Conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		UpdateAll: true,
	}).Create(&setting).Error

	if err == nil {
		logger.Info("Upserted setting", zap.String("key", key), zap.Int("bytes", len(value)))
	}
	return err
}

// Package mysql 负责建立 MySQL 连接并初始化 Repository 层
package mysql

import (
	"context"
	"fmt"
	"time"

	"friend_profile_server/internal/config"
	"friend_profile_server/internal/dao/mysql/repository"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Init 打开数据库连接，配置连接池并返回 Repository 实例集合
// 表结构由外部迁移工具维护，这里不做 AutoMigrate
func Init(conf *config.MysqlConfig) (*repository.Repositories, error) {
	db, err := Open(mysqldriver.Open(conf.DSN()))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	if conf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	}
	if conf.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(conf.ConnMaxLifetime) * time.Minute)
	}

	repos := repository.NewRepositories(db)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repos.Ping(ctx); err != nil {
		return nil, err
	}
	zap.L().Info("mysql connected",
		zap.String("host", conf.Host),
		zap.Int("port", conf.Port),
		zap.String("database", conf.DatabaseName),
	)
	return repos, nil
}

// Open 使用给定方言打开 gorm 连接，SQL 日志只输出慢查询和错误
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

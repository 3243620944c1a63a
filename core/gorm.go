package core

import (
	"fmt"
	"time"

	"paperly/global"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 连接占用超过该时长时打印告警，不做任何处理
const slowClientThreshold = 5 * time.Second

// InitGorm 初始化Gorm
func InitGorm() *gorm.DB {
	// 验证配置
	if err := validatePgsqlConfig(); err != nil {
		global.Log.Fatal("PostgreSQL配置验证失败", zap.String("error", err.Error()))
		return nil
	}

	dsn := global.Config.Pgsql.Dsn()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: getGormLogger(),
	})
	if err != nil {
		global.Log.Fatal("PostgreSQL连接失败",
			zap.String("host", global.Config.Pgsql.Host),
			zap.String("error", err.Error()))
		return nil
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		global.Log.Fatal("获取底层连接池失败", zap.String("error", err.Error()))
		return nil
	}
	maxOpen := global.Config.Pgsql.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 20
	}
	maxIdle := global.Config.Pgsql.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 5
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 注册慢查询告警回调
	if err := registerSlowClientWatchdog(db); err != nil {
		global.Log.Error("注册慢查询告警失败", zap.String("error", err.Error()))
	}

	global.Log.Info("PostgreSQL连接成功", zap.String("method", "InitGorm"), zap.String("path", "core/gorm.go"))
	return db
}

// 验证PostgreSQL配置
func validatePgsqlConfig() error {
	if global.Config.Pgsql.Host == "" {
		return fmt.Errorf("未配置PostgreSQL主机地址")
	}
	if global.Config.Pgsql.Port == 0 {
		return fmt.Errorf("未配置PostgreSQL端口")
	}
	if global.Config.Pgsql.User == "" {
		return fmt.Errorf("未配置PostgreSQL用户名")
	}
	if global.Config.Pgsql.DB == "" {
		return fmt.Errorf("未配置PostgreSQL数据库名")
	}
	return nil
}

// 获取Gorm日志记录器
func getGormLogger() logger.Interface {
	if global.Config.System.Env == "debug" {
		return logger.Default.LogMode(logger.Info)
	}
	return logger.Default.LogMode(logger.Error)
}

// registerSlowClientWatchdog 注册查询耗时告警，只记录不干预
func registerSlowClientWatchdog(db *gorm.DB) error {
	const startTimeKey = "watchdog:start_time"

	before := func(tx *gorm.DB) {
		tx.InstanceSet(startTimeKey, time.Now())
	}
	after := func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(startTimeKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		cost := time.Since(start)
		if cost > slowClientThreshold {
			global.Log.Warn("数据库连接占用超时",
				zap.Duration("cost", cost),
				zap.String("sql", tx.Statement.SQL.String()),
			)
		}
	}

	for _, op := range []string{"query", "create", "update", "delete", "row", "raw"} {
		if err := callbackBefore(db, op, before); err != nil {
			return err
		}
		if err := callbackAfter(db, op, after); err != nil {
			return err
		}
	}
	return nil
}

func callbackBefore(db *gorm.DB, op string, fn func(*gorm.DB)) error {
	switch op {
	case "query":
		return db.Callback().Query().Before("gorm:query").Register("watchdog:before_query", fn)
	case "create":
		return db.Callback().Create().Before("gorm:create").Register("watchdog:before_create", fn)
	case "update":
		return db.Callback().Update().Before("gorm:update").Register("watchdog:before_update", fn)
	case "delete":
		return db.Callback().Delete().Before("gorm:delete").Register("watchdog:before_delete", fn)
	case "row":
		return db.Callback().Row().Before("gorm:row").Register("watchdog:before_row", fn)
	case "raw":
		return db.Callback().Raw().Before("gorm:raw").Register("watchdog:before_raw", fn)
	}
	return nil
}

func callbackAfter(db *gorm.DB, op string, fn func(*gorm.DB)) error {
	switch op {
	case "query":
		return db.Callback().Query().After("gorm:query").Register("watchdog:after_query", fn)
	case "create":
		return db.Callback().Create().After("gorm:create").Register("watchdog:after_create", fn)
	case "update":
		return db.Callback().Update().After("gorm:update").Register("watchdog:after_update", fn)
	case "delete":
		return db.Callback().Delete().After("gorm:delete").Register("watchdog:after_delete", fn)
	case "row":
		return db.Callback().Row().After("gorm:row").Register("watchdog:after_row", fn)
	case "raw":
		return db.Callback().Raw().After("gorm:raw").Register("watchdog:after_raw", fn)
	}
	return nil
}

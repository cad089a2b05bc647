// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName  string `toml:"appName"`  // 应用名称，用于日志标识等
	Host     string `toml:"host"`     // 服务器监听地址，如 "0.0.0.0"
	Port     int    `toml:"port"`     // 服务器监听端口，如 8000
	Mode     string `toml:"mode"`     // 运行模式："dev" 或 "release"
	TLS      bool   `toml:"tls"`      // 是否以 HTTPS 提供服务
	CertFile string `toml:"certFile"` // TLS 证书路径，tls = true 时必填
	KeyFile  string `toml:"keyFile"`  // TLS 私钥路径，tls = true 时必填
}

// MysqlConfig MySQL 数据库连接配置
type MysqlConfig struct {
	Host            string `toml:"host"`            // MySQL 服务器地址
	Port            int    `toml:"port"`            // MySQL 端口，默认 3306
	User            string `toml:"user"`            // 数据库用户名
	Password        string `toml:"password"`        // 数据库密码
	DatabaseName    string `toml:"databaseName"`    // 数据库名称
	MaxOpenConns    int    `toml:"maxOpenConns"`    // 连接池最大连接数
	MaxIdleConns    int    `toml:"maxIdleConns"`    // 连接池最大空闲连接数
	ConnMaxLifetime int    `toml:"connMaxLifetime"` // 连接最大存活时间（分钟）
}

// DSN 构建 MySQL DSN 连接字符串
// 格式：user:password@tcp(host:port)/database?params
func (m MysqlConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, m.Host, m.Port, m.DatabaseName)
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Host     string `toml:"host"`     // Redis 服务器地址
	Port     int    `toml:"port"`     // Redis 端口，默认 6379
	Password string `toml:"password"` // Redis 密码，无密码留空
	Db       int    `toml:"db"`       // Redis 数据库编号，默认 0
	PoolSize int    `toml:"poolSize"` // 最大连接数
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// JWTConfig JWT 认证配置
type JWTConfig struct {
	Secret             string `toml:"secret"`             // JWT 签名密钥，建议 32 字符以上
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // Access Token 有效期（分钟）
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // Refresh Token 有效期（小时）
}

// CorsConfig 跨域配置
type CorsConfig struct {
	AllowOrigins []string `toml:"allowOrigins"` // 允许的来源，为空时允许所有来源
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig  `toml:"mainConfig"`  // 主配置
	MysqlConfig `toml:"mysqlConfig"` // MySQL 配置
	RedisConfig `toml:"redisConfig"` // Redis 配置
	LogConfig   `toml:"logConfig"`   // 日志配置
	JWTConfig   `toml:"jwtConfig"`   // JWT 配置
	CorsConfig  `toml:"corsConfig"`  // 跨域配置
}

// config 全局配置单例，延迟加载
var config *Config

// searchPaths 候选配置文件路径（优先加载本地配置）
var searchPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml", // 从子目录运行时的路径
	"../../configs/config.toml",
}

// Load 从指定路径加载配置文件
func Load(path string) (*Config, error) {
	conf := new(Config)
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return conf, nil
}

// ErrConfigNotFound 所有候选路径下都没有配置文件
var ErrConfigNotFound = errors.New("could not find configuration file in any of the search paths")

// LoadConfig 从多个候选路径加载配置文件
// 按顺序查找，使用第一个存在的文件；文件存在但解析失败时直接返回错误
func LoadConfig() error {
	conf, err := loadFirst(searchPaths)
	if err != nil {
		return err
	}
	config = conf
	return nil
}

func loadFirst(paths []string) (*Config, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
		return Load(path)
	}
	return nil, ErrConfigNotFound
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件，找不到时使用零值配置
// 需要区分解析失败的调用方应先调用 LoadConfig
func GetConfig() *Config {
	if config == nil {
		if err := LoadConfig(); err != nil {
			config = new(Config)
		}
	}
	return config
}

package config

import "fmt"

type Pgsql struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DB           string `mapstructure:"db"`
	SSLMode      string `mapstructure:"ssl_mode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"` // 连接池最大连接数
	MaxIdleConns int    `mapstructure:"max_idle_conns"` // 连接池最大空闲连接数
}

func (p Pgsql) Dsn() string {
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=Asia/Shanghai",
		p.Host, p.Port, p.User, p.Password, p.DB, sslMode)
}

package config

import "fmt"

type Email struct {
	Host     string `mapstructure:"host"`     // SMTP服务器地址
	Port     int    `mapstructure:"port"`     // SMTP端口
	Username string `mapstructure:"username"` // 发件人邮箱
	Password string `mapstructure:"password"` // 邮箱授权码
	From     string `mapstructure:"from"`     // 发件人显示名称
}

func (e Email) Addr() string {
	return fmt.Sprintf("%s:%d", e.Host, e.Port)
}

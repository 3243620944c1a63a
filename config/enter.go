package config

type Config struct {
	Pgsql   Pgsql   `mapstructure:"pgsql"`
	Redis   Redis   `mapstructure:"redis"`
	Log     Log     `mapstructure:"log"`
	System  System  `mapstructure:"system"`
	Jwt     Jwt     `mapstructure:"jwt"`
	Email   Email   `mapstructure:"email"`
	Captcha Captcha `mapstructure:"captcha"`
	Upload  Upload  `mapstructure:"upload"`

	TencentCos TencentCos `mapstructure:"tencent_cos"`
}

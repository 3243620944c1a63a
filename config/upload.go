package config

// Upload 本地上传配置
type Upload struct {
	Path string `mapstructure:"path" json:"path" yaml:"path"` // 本地保存路径
	Size int    `mapstructure:"size" json:"size" yaml:"size"` // 图片大小限制，单位MB
}

package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// Md5 计算数据的MD5摘要
func Md5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// InList 判断元素是否在列表中
func InList(key string, list []string) bool {
	for _, item := range list {
		if item == key {
			return true
		}
	}
	return false
}

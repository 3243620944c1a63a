package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenOtpCode 生成6位随机数字验证码，用于找回密码
func GenOtpCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}

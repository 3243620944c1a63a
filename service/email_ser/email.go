package email_ser

import (
	"fmt"
	"net/smtp"
	"time"

	"paperly/global"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
)

// sendMail 通过SMTP发送邮件
func sendMail(to string, subject string, body string) error {
	cfg := global.Config.Email

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		cfg.From, to, subject, body,
	))

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	return smtp.SendMail(cfg.Addr(), auth, cfg.From, []string{to}, msg)
}

// SendOtpMail 发送找回密码验证码，失败时重试
func SendOtpMail(to string, code string) error {
	subject := "Paperly 找回密码验证码"
	body := fmt.Sprintf("您的验证码是：%s，10分钟内有效。如非本人操作请忽略此邮件。", code)

	err := retry.Do(
		func() error {
			return sendMail(to, subject, body)
		},
		retry.Attempts(3),
		retry.Delay(2*time.Second),
		retry.OnRetry(func(n uint, err error) {
			global.Log.Warn("发送验证码邮件失败，准备重试",
				zap.Uint("attempt", n+1),
				zap.String("to", to),
				zap.String("error", err.Error()),
			)
		}),
	)
	if err != nil {
		global.Log.Error("发送验证码邮件失败",
			zap.String("to", to),
			zap.String("error", err.Error()),
		)
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

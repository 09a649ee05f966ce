package platform

import (
	"context"
	"crypto/tls"
	"file-storage-server/config"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/util"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

const otpSubject = "Код для входа"

// SMTPMailer : отправка кодов по SMTP
type SMTPMailer struct {
	cfg    config.SMTPConfig
	otpTTL time.Duration
}

// NewMailer : SMTP, если задан host, иначе коды пишутся в лог (локальная разработка)
func NewMailer(cfg config.SMTPConfig, otpTTL time.Duration) ports.Mailer {
	if cfg.Host == "" {
		return &LogMailer{}
	}
	return &SMTPMailer{cfg: cfg, otpTTL: otpTTL}
}

func (m *SMTPMailer) SendOTP(ctx context.Context, email, code string) error {
	body := fmt.Sprintf("Ваш код подтверждения: %s\r\nКод действует %s.\r\n", code, m.otpTTL)
	return m.send(ctx, email, otpSubject, body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	msg := buildMessage(m.cfg.FromName, m.cfg.From, to, subject, body)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	dialer := net.Dialer{Timeout: 5 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("[Mailer] ошибка подключения к SMTP: %w", err)
	}
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("[Mailer] ошибка SMTP-рукопожатия: %w", err)
	}
	defer client.Close()

	if m.cfg.TLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
				return fmt.Errorf("[Mailer] ошибка STARTTLS: %w", err)
			}
		}
	}
	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("[Mailer] ошибка аутентификации: %w", err)
		}
	}
	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	wc, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := wc.Write([]byte(msg)); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func buildMessage(fromName, from, to, subject, body string) string {
	fromHeader := from
	if fromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", mime.BEncoding.Encode("UTF-8", fromName), from)
	}

	var msg strings.Builder
	msg.WriteString("From: " + fromHeader + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + mime.BEncoding.Encode("UTF-8", subject) + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return msg.String()
}

// LogMailer : вместо отправки пишет код в лог
type LogMailer struct{}

func (LogMailer) SendOTP(_ context.Context, email, code string) error {
	util.Sugar.Warnw("[Mailer] SMTP не настроен, код записан в лог", "email", email, "code", code)
	return nil
}

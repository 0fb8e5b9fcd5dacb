package services

import (
	"fmt"
	"net/smtp"

	"github.com/printmate/storefront-backend/config"
)

// OTPSender delivers a one-time password to a user.
type OTPSender interface {
	SendOTP(email, code string) error
}

// SMTPSender sends OTP emails over plain SMTP.
type SMTPSender struct {
	server     string
	port       string
	email      string
	password   string
	senderName string
}

func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	if cfg.SMTPEmail == "" {
		return nil, fmt.Errorf("SMTP_EMAIL environment variable not set")
	}
	if cfg.SMTPPassword == "" {
		return nil, fmt.Errorf("SMTP_PASSWORD environment variable not set")
	}
	return &SMTPSender{
		server:     cfg.SMTPServer,
		port:       cfg.SMTPPort,
		email:      cfg.SMTPEmail,
		password:   cfg.SMTPPassword,
		senderName: cfg.SenderName,
	}, nil
}

func (s *SMTPSender) SendOTP(to string, code string) error {
	subject := "Your login code - " + s.senderName
	from := fmt.Sprintf("%s <%s>", s.senderName, s.email)

	body := fmt.Sprintf(
		"Hello,\r\n\r\nYour one-time password for %s is:\r\n\r\n    %s\r\n\r\nThis code expires in 5 minutes. If you did not request it, ignore this email.\r\n",
		s.senderName, code)

	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		from, to, subject, body)

	auth := smtp.PlainAuth("", s.email, s.password, s.server)
	if err := smtp.SendMail(s.server+":"+s.port, auth, s.email, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	return nil
}

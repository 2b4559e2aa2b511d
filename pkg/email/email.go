// Package email, uygulama genelinde email gönderimi için soyutlama katmanı sağlar.
//
// EmailSender interface'i ile gönderim detayları soyutlanır (Dependency Inversion).
// Şu anki implementasyon Resend API kullanır; farklı bir sağlayıcıya geçmek
// için yeni bir implementasyon yazıp constructor'da değiştirmek yeterli.
//
// Bu paket dışarıya iki şey sunar:
// 1. EmailSender interface — service'ler buna bağımlı olur
// 2. NewResendSender constructor — main.go'da wire-up için
package email

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v3"
)

// EmailSender, email gönderimi için interface.
type EmailSender interface {
	// SendContactMessage, iletişim formu mesajını site sahibine iletir.
	// replyTo formu gönderen ziyaretçinin adresidir — site sahibi doğrudan
	// "Reply" ile yanıt verebilir.
	SendContactMessage(ctx context.Context, name, replyTo, subject, message string) error
}

// resendSender, Resend API ile email gönderen EmailSender implementasyonu.
type resendSender struct {
	client    *resend.Client
	fromEmail string // Gönderici adresi (ör: noreply@vitrin.app)
	toEmail   string // Sabit alıcı — site sahibi
}

// NewResendSender, Resend API client'ı ile yeni bir EmailSender oluşturur.
//
// apiKey: Resend dashboard'dan alınan API key (re_xxxxxxxx formatında).
// fromEmail: Gönderici adresi — Resend'de doğrulanmış domain altında olmalı.
// toEmail: İletişim formu mesajlarının iletileceği sabit adres.
func NewResendSender(apiKey, fromEmail, toEmail string) EmailSender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// SendContactMessage, iletişim formu içeriğini HTML email olarak gönderir.
//
// Ziyaretçi girdisi HTML body'ye gömülmeden önce escape edilir —
// form üzerinden HTML injection'ı engeller.
func (s *resendSender) SendContactMessage(ctx context.Context, name, replyTo, subject, message string) error {
	if subject == "" {
		subject = "New message from your portfolio"
	}

	safeName := html.EscapeString(name)
	safeEmail := html.EscapeString(replyTo)
	safeSubject := html.EscapeString(subject)
	safeMessage := html.EscapeString(message)

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#0f172a;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#0f172a;padding:40px 0;">
    <tr>
      <td align="center">
        <table width="520" cellpadding="0" cellspacing="0" style="background-color:#1e293b;border-radius:8px;padding:40px;">
          <tr>
            <td>
              <h1 style="color:#e2e8f0;font-size:22px;margin:0 0 8px 0;">vitrin</h1>
              <h2 style="color:#e2e8f0;font-size:17px;margin:0 0 24px 0;">%s</h2>
              <p style="color:#94a3b8;font-size:14px;line-height:1.6;margin:0 0 8px 0;">
                <strong style="color:#e2e8f0;">From:</strong> %s &lt;%s&gt;
              </p>
              <p style="color:#94a3b8;font-size:15px;line-height:1.6;margin:16px 0 0 0;white-space:pre-wrap;">%s</p>
              <p style="color:#475569;font-size:12px;line-height:1.6;margin:32px 0 0 0;">
                Sent from your portfolio contact form. Reply to this email to answer directly.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, safeSubject, safeName, safeEmail, safeMessage)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("vitrin <%s>", s.fromEmail),
		To:      []string{s.toEmail},
		ReplyTo: replyTo,
		Subject: fmt.Sprintf("Portfolio Contact: %s", subject),
		Html:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}

package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendInquiryNotification(toEmail string, n InquiryNotification) error
}

// InquiryNotification carries everything the admin mail needs about a newly
// submitted inquiry.
type InquiryNotification struct {
	InquiryId string
	UserName  string
	UserEmail string
	Type      string
	Content   string
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendInquiryNotification(toEmail string, n InquiryNotification) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("【業務マニュアルBot】新規問い合わせ (%s)", n.Type))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>新しい問い合わせが届きました</h2>
			<table style="border-collapse: collapse;">
				<tr><td style="padding: 4px 12px 4px 0;"><b>受付番号</b></td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;"><b>種類</b></td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;"><b>送信者</b></td><td>%s (%s)</td></tr>
			</table>
			<h3>内容</h3>
			<p style="white-space: pre-wrap; background: #f5f5f5; padding: 12px; border-radius: 4px;">%s</p>
		</div>
	`, n.InquiryId, n.Type, n.UserName, n.UserEmail, n.Content)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

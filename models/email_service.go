package models

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

// SendOrderConfirmation emails a checkout receipt. Delivery is best-effort;
// callers treat a returned error as log-only.
func (s *EmailService) SendOrderConfirmation(user User, lines []CartLine, total float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", "Order Confirmation - FortumarsMart")

	var items strings.Builder
	for _, line := range lines {
		items.WriteString(fmt.Sprintf(
			`<tr><td style="padding:8px 0;">%s</td><td style="text-align:center;">x%d</td><td style="text-align:right;">$%.2f</td></tr>`,
			line.Name, line.Quantity, line.Price*float64(line.Quantity),
		))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #f59e0b; text-align: center; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        .total { font-size: 20px; font-weight: bold; text-align: right; color: #f59e0b; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">FortumarsMart</div>
        <h2>Thanks, %s!</h2>
        <p>Your order has been placed. Here is what you bought:</p>
        <table>%s</table>
        <p class="total">Total: $%.2f</p>
        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>`, user.Name, items.String(), total)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("Failed to send order confirmation to %s: %v", user.Email, err)
		return err
	}
	return nil
}

package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender sends order-confirmation emails through SendGrid.
type SendGridSender struct {
	apiKey   string
	from     string
	fromName string
}

func NewSendGridSender(apiKey, from, fromName string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, from: from, fromName: fromName}
}

func (s *SendGridSender) Send(_ context.Context, email OrderEmail) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("sendgrid api key is empty")
	}
	if email.To == "" {
		return "", fmt.Errorf("recipient address is empty")
	}

	subject := fmt.Sprintf("Your ChristmasFun.store downloads — order %s", email.OrderNumber)
	plain, html := renderOrderEmail(email)

	message := sgmail.NewSingleEmail(
		sgmail.NewEmail(s.fromName, s.from),
		subject,
		sgmail.NewEmail("", email.To),
		plain,
		html,
	)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return "", fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return "", fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	messageID := ""
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}
	return messageID, nil
}

// renderOrderEmail produces the fixed confirmation layout in both plain
// text and HTML.
func renderOrderEmail(email OrderEmail) (plain, html string) {
	var pb, hb strings.Builder

	fmt.Fprintf(&pb, "Thank you for your order!\n\n")
	fmt.Fprintf(&pb, "Order: %s\n", email.OrderNumber)
	fmt.Fprintf(&pb, "Product: %s (%s)\n\n", email.ProductName, email.ProductType)
	fmt.Fprintf(&pb, "Your downloads:\n")
	for _, link := range email.DownloadLinks {
		fmt.Fprintf(&pb, "  %s\n", link)
	}
	fmt.Fprintf(&pb, "\nHappy holidays!\nChristmasFun.store\n")

	fmt.Fprintf(&hb, "<h2>Thank you for your order!</h2>")
	fmt.Fprintf(&hb, "<p>Order: <strong>%s</strong><br>Product: %s (%s)</p>", email.OrderNumber, email.ProductName, email.ProductType)
	fmt.Fprintf(&hb, "<p>Your downloads:</p><ul>")
	for _, link := range email.DownloadLinks {
		fmt.Fprintf(&hb, `<li><a href="%s">%s</a></li>`, link, link)
	}
	fmt.Fprintf(&hb, "</ul><p>Happy holidays!<br>ChristmasFun.store</p>")

	return pb.String(), hb.String()
}

package mail

import "context"

// OrderEmail is everything needed to render the order-confirmation email.
type OrderEmail struct {
	To            string
	ProductName   string
	ProductType   string
	DownloadLinks []string
	OrderNumber   string
}

// Sender dispatches the order-confirmation email. Implementations return
// the provider's message id on success.
type Sender interface {
	Send(ctx context.Context, email OrderEmail) (messageID string, err error)
}

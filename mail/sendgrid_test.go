package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOrderEmailIncludesLinksAndOrderNumber(t *testing.T) {
	plain, html := renderOrderEmail(OrderEmail{
		To:          "buyer@example.com",
		ProductName: "Jolly Snowman",
		ProductType: "single-item",
		DownloadLinks: []string{
			"https://downloads.christmasfun.store/designs/snowman-a4.pdf",
			"https://downloads.christmasfun.store/designs/snowman-letter.pdf",
		},
		OrderNumber: "20261224-abc",
	})

	assert.Contains(t, plain, "20261224-abc")
	assert.Contains(t, plain, "Jolly Snowman")
	assert.Contains(t, plain, "snowman-a4.pdf")
	assert.Contains(t, plain, "snowman-letter.pdf")

	assert.Contains(t, html, `<a href="https://downloads.christmasfun.store/designs/snowman-a4.pdf">`)
	assert.Contains(t, html, "20261224-abc")
}

func TestSendGridSenderRequiresConfig(t *testing.T) {
	sender := NewSendGridSender("", "orders@christmasfun.store", "ChristmasFun.store")
	_, err := sender.Send(context.Background(), OrderEmail{To: "buyer@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")

	sender = NewSendGridSender("SG.key", "orders@christmasfun.store", "ChristmasFun.store")
	_, err = sender.Send(context.Background(), OrderEmail{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipient")
}

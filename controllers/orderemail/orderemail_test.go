package emailControllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julddllc/christmasfun-api/mail"
	"github.com/julddllc/christmasfun-api/middleware"
)

type fakeSender struct {
	sent []mail.OrderEmail
	err  error
}

func (f *fakeSender) Send(_ context.Context, email mail.OrderEmail) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, email)
	return "msg-42", nil
}

func newEmailRouter(sender mail.Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/functions/v1/send-order-email",
		middleware.RequireServiceToken("svc-secret"),
		SendOrderEmailHandler(sender),
	)
	return r
}

func postEmail(r *gin.Engine, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/send-order-email", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{"to":"buyer@example.com","productName":"Jolly Snowman","productType":"single-item","downloadLinks":["https://downloads.christmasfun.store/designs/snowman-a4.pdf"],"orderNumber":"20261224-abc"}`

func TestSendOrderEmailSuccess(t *testing.T) {
	sender := &fakeSender{}
	r := newEmailRouter(sender)

	w := postEmail(r, validBody, "svc-secret")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "msg-42")

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "buyer@example.com", sender.sent[0].To)
	assert.Equal(t, []string{"https://downloads.christmasfun.store/designs/snowman-a4.pdf"}, sender.sent[0].DownloadLinks)
}

func TestSendOrderEmailRequiresServiceToken(t *testing.T) {
	sender := &fakeSender{}
	r := newEmailRouter(sender)

	assert.Equal(t, http.StatusUnauthorized, postEmail(r, validBody, "").Code)
	assert.Equal(t, http.StatusUnauthorized, postEmail(r, validBody, "wrong-token").Code)
	assert.Empty(t, sender.sent)
}

func TestSendOrderEmailValidatesBody(t *testing.T) {
	r := newEmailRouter(&fakeSender{})

	w := postEmail(r, `{"productName":"Jolly Snowman"}`, "svc-secret")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendOrderEmailProviderFailure(t *testing.T) {
	r := newEmailRouter(&fakeSender{err: fmt.Errorf("sendgrid send failed: status=503")})

	w := postEmail(r, validBody, "svc-secret")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "sendgrid send failed")
}

// Package checkout turns the current cart plus a customer email into a
// hosted-payment redirect. Validation happens before any network call, and
// no failure path ever clears the cart or navigates away.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/julddllc/christmasfun-api/cart"
)

// emailPattern is intentionally loose: non-whitespace, @, non-whitespace,
// dot, non-whitespace. The payment provider does the real verification.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const defaultTimeout = 20 * time.Second

// Navigator performs the full-page redirect to the hosted payment page.
type Navigator interface {
	Redirect(url string)
}

// Config points the client at the payment-session endpoint.
type Config struct {
	// EndpointURL is the payment-session function, e.g.
	// https://api.christmasfun.store/functions/v1/create-checkout-session
	EndpointURL string
	// AnonKey is the public anon key sent in the apikey header and as a
	// bearer token.
	AnonKey string
	// Timeout bounds the session-creation call; defaults to 20s.
	Timeout time.Duration
}

// Client is the checkout orchestrator.
type Client struct {
	cfg  Config
	http *http.Client
	nav  Navigator

	mu   sync.Mutex
	busy bool
}

func New(cfg Config, nav Navigator) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
		nav:  nav,
	}
}

type lineItem struct {
	PriceReference string `json:"priceReference"`
	Quantity       int    `json:"quantity"`
}

type sessionRequest struct {
	Items         []lineItem `json:"items"`
	CustomerEmail string     `json:"customerEmail"`
}

type sessionResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// Checkout validates the email and cart (in that order), creates a payment
// session and redirects to it. On success the cart is cleared before the
// redirect; on any failure the cart and email are preserved for retry.
//
// Only one checkout may be in flight per client; concurrent calls get
// ErrCheckoutInFlight. This is a UX guard against double-clicks, not a
// server-side idempotency guarantee.
func (c *Client) Checkout(ctx context.Context, store *cart.Store, email string) error {
	if !emailPattern.MatchString(email) {
		return &ValidationError{Reason: "invalid email"}
	}
	if store.Count() == 0 {
		return &ValidationError{Reason: "empty cart"}
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrCheckoutInFlight
	}
	c.busy = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}()

	items := store.Items()
	reqBody := sessionRequest{
		Items:         make([]lineItem, 0, len(items)),
		CustomerEmail: email,
	}
	for _, item := range items {
		reqBody.Items = append(reqBody.Items, lineItem{
			PriceReference: item.PriceReference,
			Quantity:       1,
		})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.EndpointURL, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.cfg.AnonKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.AnonKey)
	// Fresh token per attempt; the server records it but does not dedupe.
	req.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	var parsed sessionResponse
	_ = json.Unmarshal(body, &parsed) // non-JSON bodies fall through to the generic message

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || parsed.URL == "" {
		msg := parsed.Error
		if msg == "" {
			msg = "checkout failed, please try again"
		}
		return &CheckoutError{Message: msg}
	}

	// Payment is already initiated at this point, so a failed clear must
	// not block the redirect; the redirect is the last observable step.
	if err := store.Clear(ctx); err != nil {
		log.Printf("failed to clear cart after checkout: %v", err)
	}
	c.nav.Redirect(parsed.URL)
	return nil
}

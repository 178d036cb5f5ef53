// Package service contains the phone verification dispatch service
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"budgetbuddy/finance-api/config"
)

// GenerateCode returns a 6-digit numeric one-time code. Each digit is
// drawn independently, codes are not unique across time.
func GenerateCode() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = byte('0' + rand.IntN(10))
	}

	return string(b)
}

// Sender delivers an SMS body to a phone number and returns the
// provider's message id. It exists so tests can swap the Twilio
// transport for a fake.
type Sender interface {
	Send(ctx context.Context, to, body string) (sid string, err error)
}

// Dispatcher sends verification codes over a Sender. Failures are not
// retried, the triggering operation fails as a whole.
type Dispatcher struct {
	Sender Sender
}

func NewDispatcher(s Sender) *Dispatcher {
	return &Dispatcher{Sender: s}
}

// Dispatch delivers code to phoneNumber and returns the provider
// message id
func (d *Dispatcher) Dispatch(ctx context.Context, phoneNumber, code string) (string, error) {
	return d.Sender.Send(ctx, phoneNumber, "Your BudgetBuddy verification code is: "+code)
}

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioSender sends SMS through the Twilio REST API
type TwilioSender struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	client     *http.Client
}

func NewTwilioSender(cfg config.TwilioConfig) *TwilioSender {
	return &TwilioSender{
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		fromNumber: cfg.FromNumber,
		baseURL:    twilioAPIBase,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

type twilioResponse struct {
	SID     string `json:"sid"`
	Message string `json:"message"`
}

func (t *TwilioSender) Send(ctx context.Context, to, body string) (string, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", t.baseURL, t.accountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(t.accountSID, t.authToken)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach SMS provider, %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var res twilioResponse
	if err := json.Unmarshal(respBody, &res); err != nil {
		return "", fmt.Errorf("unexpected SMS provider response, %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("SMS provider rejected message, %s", res.Message)
	}

	return res.SID, nil
}

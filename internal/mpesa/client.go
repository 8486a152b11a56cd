package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config carries the Daraja credentials and endpoints. Values come from the
// environment; nothing here is hardcoded in source.
type Config struct {
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	BaseURL        string // e.g. https://sandbox.safaricom.co.ke
	CallbackURL    string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		now:        time.Now,
	}
}

func (c *Client) tokenURL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/oauth/v1/generate?grant_type=client_credentials"
}

func (c *Client) pushURL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/mpesa/stkpush/v1/processrequest"
}

func basicAuth(key, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(key+":"+secret))
}

// derivePassword builds the one-time request password from the short code,
// the shared passkey and a yyyyMMddHHmmss timestamp.
func derivePassword(shortCode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
}

// normalizeMSISDN rewrites a local trunk-prefixed number ("07...") to the
// 254 country code form. Anything else passes through unchanged.
func normalizeMSISDN(phone string) string {
	if strings.HasPrefix(phone, "0") {
		return "254" + phone[1:]
	}
	return phone
}

// accessToken performs the client-credentials exchange. A fresh token is
// fetched per attempt; expiry is not tracked.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL(), nil)
	if err != nil {
		return "", &Error{Kind: ErrAuth, Detail: err.Error()}
	}
	req.Header.Set("Authorization", basicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Kind: ErrAuth, Detail: fmt.Sprintf("token request: %v", err)}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{Kind: ErrAuth, Detail: fmt.Sprintf("token endpoint http=%d body=%s", resp.StatusCode, string(raw))}
	}

	var tok accessTokenResponse
	if err := json.Unmarshal(raw, &tok); err != nil {
		return "", &Error{Kind: ErrAuth, Detail: fmt.Sprintf("token decode: %v body=%s", err, string(raw))}
	}
	if strings.TrimSpace(tok.AccessToken) == "" {
		return "", &Error{Kind: ErrAuth, Detail: "access token missing in response"}
	}
	return tok.AccessToken, nil
}

// STKPush runs the three-step handshake: token exchange, password derivation
// and the push request. Calls are strictly sequential and never retried;
// repeated calls with the same arguments prompt the payer again.
func (c *Client) STKPush(ctx context.Context, phone string, amount int, accountRef, description string) (*STKPushResponse, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := c.now().Format("20060102150405")
	password := derivePassword(c.cfg.ShortCode, c.cfg.Passkey, timestamp)
	msisdn := normalizeMSISDN(phone)

	payload := STKPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            msisdn,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       msisdn,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  accountRef,
		TransactionDesc:   description,
	}

	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.pushURL(), bytes.NewBuffer(body))
	if err != nil {
		return nil, &Error{Kind: ErrGateway, Detail: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: ErrGateway, Detail: fmt.Sprintf("stk push request: %v", err)}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: ErrGateway, Detail: fmt.Sprintf("stk push http=%d body=%s", resp.StatusCode, string(raw))}
	}

	var res STKPushResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &Error{Kind: ErrParse, Detail: string(raw)}
	}
	if strings.TrimSpace(res.CustomerMessage) == "" {
		// Gateway answered 2xx but not in the expected shape; surface the raw
		// body rather than failing hard.
		res.CustomerMessage = string(raw)
	}
	return &res, nil
}

package slipverify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"flower-shop-service/src/internal/model"
	"flower-shop-service/src/pkg/log"

	"github.com/spf13/viper"
)

// Client talks to the external payment-slip verification service. The slip
// image goes up as multipart form data; the structured verification result
// comes back and is handed to the storefront untouched (plus the raw body,
// kept for the evidence audit trail).
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Log        log.Log
}

func NewClient(v *viper.Viper, logger log.Log) *Client {
	return &Client{
		BaseURL: v.GetString("slipverify.url"),
		APIKey:  v.GetString("slipverify.api_key"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		Log: logger,
	}
}

// verifyResponse mirrors the wire format of the verification service.
type verifyResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Amount         float64 `json:"amount"`
		TransRef       string  `json:"transRef"`
		TransDate      string  `json:"transDate"`
		TransTime      string  `json:"transTime"`
		TransTimestamp string  `json:"transTimestamp"`
		Sender         struct {
			DisplayName string `json:"displayName"`
			Name        string `json:"name"`
		} `json:"sender"`
		SendingBank string `json:"sendingBank"`
	} `json:"data"`
}

func (c *Client) Verify(ctx context.Context, filename string, file []byte) (*model.SlipVerification, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("files", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("x-authorization", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("slipverify-client", err.Error(), "Verify", filename)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.Log.Error("slipverify-client", fmt.Sprintf("verification service returned %d", resp.StatusCode), "Verify", string(raw))
		return nil, fmt.Errorf("slip verification failed with status %d", resp.StatusCode)
	}

	var parsed verifyResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("unexpected verification response: %w", err)
	}

	senderName := parsed.Data.Sender.DisplayName
	if senderName == "" {
		senderName = parsed.Data.Sender.Name
	}

	return &model.SlipVerification{
		Success:        parsed.Success,
		Amount:         parsed.Data.Amount,
		TransRef:       parsed.Data.TransRef,
		SenderName:     senderName,
		SenderBank:     parsed.Data.SendingBank,
		TransTimestamp: parsed.Data.TransTimestamp,
		RawPayload:     raw,
	}, nil
}

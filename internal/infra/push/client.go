package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"cosmic-courier/internal/domain/cosmic"
	"cosmic-courier/internal/pkg/config"
	"cosmic-courier/internal/pkg/errs"
)

// Result is the delivery outcome reported by the push service for one
// broadcast.
type Result struct {
	Success        bool `json:"success"`
	RecipientCount int  `json:"recipientCount"`
	Successful     int  `json:"successful"`
	Failed         int  `json:"failed"`
}

// Client broadcasts notifications through the push delivery HTTP service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.PushConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type sendRequest struct {
	Payload sendPayload `json:"payload"`
}

type sendPayload struct {
	Type  string         `json:"type"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

// Send broadcasts one rendered notification to all subscribers.
func (c *Client) Send(ctx context.Context, n cosmic.Notification) (Result, error) {
	payload, err := json.Marshal(sendRequest{Payload: sendPayload{
		Type:  n.Tag,
		Title: n.Title,
		Body:  n.Body,
		Data:  n.Data,
	}})
	if err != nil {
		return Result{}, errs.Wrap(err, "encode push payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/notifications/send", bytes.NewReader(payload))
	if err != nil {
		return Result{}, errs.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, errs.Mark(errs.Wrap(err, "send push notification"), errs.ErrPushDeliveryFailed)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Result{}, errs.Mark(
			errs.New(fmt.Sprintf("push service returned status %d", res.StatusCode)),
			errs.ErrPushDeliveryFailed,
		)
	}

	var result Result
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return Result{}, errs.Wrap(err, "decode push response")
	}
	return result, nil
}

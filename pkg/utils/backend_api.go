package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const noAnswerPlaceholder = "No response received from the API."

// BackendClientInterface is the contract with the external AI/analytics
// backend. Chat reports failures as typed errors; FailureMessage turns
// them into the fixed strings shown in the conversation.
type BackendClientInterface interface {
	Chat(ctx context.Context, query string) (string, error)
	FetchTopics(ctx context.Context) []map[string]interface{}
}

type BackendClient struct {
	baseURL       string
	httpClient    *http.Client
	chatTimeout   time.Duration
	topicsTimeout time.Duration
}

func NewBackendClient(baseURL string, chatTimeout, topicsTimeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL:       baseURL,
		httpClient:    &http.Client{},
		chatTimeout:   chatTimeout,
		topicsTimeout: topicsTimeout,
	}
}

type chatRequest struct {
	Query string `json:"query"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// Chat posts the composed prompt and returns the backend's answer text.
// A 2xx reply with no usable answer yields a fixed placeholder rather
// than an error; everything else maps onto the backend error taxonomy.
func (c *BackendClient) Chat(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.chatTimeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{Query: query})
	if err != nil {
		return "", ErrBackendUnreachable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", ErrBackendUnreachable
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &BackendStatusError{StatusCode: res.StatusCode}
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", classifyTransportError(err)
	}
	if len(raw) == 0 {
		return noAnswerPlaceholder, nil
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", ErrBackendUnreachable
	}
	if parsed.Answer == "" {
		return noAnswerPlaceholder, nil
	}
	return parsed.Answer, nil
}

type topicsResponse struct {
	Data []map[string]interface{} `json:"data"`
}

// FetchTopics pulls the review/topics feed for the insights dashboard.
// Any failure degrades to an empty dataset; the dashboard stays usable.
func (c *BackendClient) FetchTopics(ctx context.Context) []map[string]interface{} {
	ctx, cancel := context.WithTimeout(ctx, c.topicsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/fetch/topics", nil)
	if err != nil {
		return []map[string]interface{}{}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return []map[string]interface{}{}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return []map[string]interface{}{}
	}

	var parsed topicsResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return []map[string]interface{}{}
	}
	if parsed.Data == nil {
		return []map[string]interface{}{}
	}
	return parsed.Data
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrBackendTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrBackendTimeout
	}
	return ErrBackendUnreachable
}

// FailureMessage converts a backend error into the fixed user-visible
// string appended to the conversation in place of an answer.
func FailureMessage(err error) string {
	var statusErr *BackendStatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Backend error: HTTP %d", statusErr.StatusCode)
	case errors.Is(err, ErrBackendTimeout):
		return "Backend timeout. Please try again."
	default:
		return "Unable to connect to the backend API."
	}
}

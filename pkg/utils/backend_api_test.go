package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestChatReturnsAnswer(t *testing.T) {
	var gotQuery string
	srv := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotQuery = body["query"]

		json.NewEncoder(w).Encode(map[string]string{"answer": "Hello from the backend"})
	})

	client := NewBackendClient(srv.URL, time.Second, time.Second)
	answer, err := client.Chat(context.Background(), "composed prompt")

	require.NoError(t, err)
	assert.Equal(t, "Hello from the backend", answer)
	assert.Equal(t, "composed prompt", gotQuery)
}

func TestChatEmptyAnswerYieldsPlaceholder(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"empty body": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
		"missing answer field": func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"other": "x"})
		},
		"blank answer": func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"answer": ""})
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := newChatServer(t, handler)
			client := NewBackendClient(srv.URL, time.Second, time.Second)

			answer, err := client.Chat(context.Background(), "q")
			require.NoError(t, err)
			assert.Equal(t, "No response received from the API.", answer)
		})
	}
}

func TestChatNonOKStatus(t *testing.T) {
	srv := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	client := NewBackendClient(srv.URL, time.Second, time.Second)
	_, err := client.Chat(context.Background(), "q")

	var statusErr *BackendStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, "Backend error: HTTP 502", FailureMessage(err))
}

func TestChatTimeout(t *testing.T) {
	srv := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	})

	client := NewBackendClient(srv.URL, 30*time.Millisecond, time.Second)
	_, err := client.Chat(context.Background(), "q")

	assert.ErrorIs(t, err, ErrBackendTimeout)
	assert.Equal(t, "Backend timeout. Please try again.", FailureMessage(err))
}

func TestChatUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewBackendClient(srv.URL, time.Second, time.Second)
	_, err := client.Chat(context.Background(), "q")

	assert.ErrorIs(t, err, ErrBackendUnreachable)
	assert.Equal(t, "Unable to connect to the backend API.", FailureMessage(err))
}

func TestChatMalformedJSON(t *testing.T) {
	srv := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})

	client := NewBackendClient(srv.URL, time.Second, time.Second)
	_, err := client.Chat(context.Background(), "q")

	assert.ErrorIs(t, err, ErrBackendUnreachable)
}

func TestFetchTopicsReturnsRows(t *testing.T) {
	srv := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/fetch/topics", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"clean_tweet": "nice", "sentiment": "positive"},
			},
		})
	})

	client := NewBackendClient(srv.URL, time.Second, time.Second)
	rows := client.FetchTopics(context.Background())

	require.Len(t, rows, 1)
	assert.Equal(t, "nice", rows[0]["clean_tweet"])
}

func TestFetchTopicsDegradesToEmpty(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("nope"))
		},
		"missing data field": func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := newChatServer(t, handler)
			client := NewBackendClient(srv.URL, time.Second, time.Second)

			rows := client.FetchTopics(context.Background())
			assert.NotNil(t, rows)
			assert.Empty(t, rows)
		})
	}
}

func TestFetchTopicsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewBackendClient(srv.URL, time.Second, time.Second)
	rows := client.FetchTopics(context.Background())

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

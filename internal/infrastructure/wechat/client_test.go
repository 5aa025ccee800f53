package wechat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"self-fitness/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.WeChatConfig{AppID: "wx-app", Secret: "wx-secret", BaseURL: srv.URL})
}

func TestCode2SessionSendsExpectedQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sns/jscode2session", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "wx-app", q.Get("appid"))
		assert.Equal(t, "wx-secret", q.Get("secret"))
		assert.Equal(t, "the-code", q.Get("js_code"))
		assert.Equal(t, "authorization_code", q.Get("grant_type"))
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(`{"openid":"o-123","session_key":"sk","unionid":"u-1"}`))
	})

	session, err := client.Code2Session(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "o-123", session.OpenID)
	assert.Equal(t, "sk", session.SessionKey)
	assert.Equal(t, "u-1", session.UnionID)
}

func TestCode2SessionErrCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errcode":40029,"errmsg":"invalid code"}`))
	})

	_, err := client.Code2Session(context.Background(), "bad")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 40029, apiErr.Code)
	assert.Equal(t, "invalid code", apiErr.Message)
}

func TestCode2SessionEmptyOpenID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"session_key":"sk"}`))
	})

	_, err := client.Code2Session(context.Background(), "code")
	assert.ErrorIs(t, err, ErrEmptyOpenID)
}

func TestCode2SessionHTTPFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Code2Session(context.Background(), "code")
	assert.Error(t, err)
}

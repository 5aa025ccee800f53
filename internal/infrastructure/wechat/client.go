// Package wechat talks to the WeChat mini-program login API.
package wechat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"self-fitness/config"
)

var ErrEmptyOpenID = errors.New("wechat: empty openid in code2session response")

// Session is the jscode2session result.
type Session struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid"`
	ErrCode    int    `json:"errcode"`
	ErrMsg     string `json:"errmsg"`
}

// APIError is returned when WeChat answers with a non-zero errcode.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wechat: errcode %d: %s", e.Code, e.Message)
}

type Client struct {
	cfg        config.WeChatConfig
	httpClient *http.Client
}

func NewClient(cfg config.WeChatConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Code2Session exchanges a login code from wx.login for the user's openid.
func (c *Client) Code2Session(ctx context.Context, code string) (*Session, error) {
	params := url.Values{}
	params.Set("appid", c.cfg.AppID)
	params.Set("secret", c.cfg.Secret)
	params.Set("js_code", code)
	params.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/sns/jscode2session?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wechat: code2session request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wechat: code2session returned HTTP %d", resp.StatusCode)
	}

	// WeChat answers with text/plain, so decode regardless of content type
	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("wechat: decode code2session response: %w", err)
	}

	if session.ErrCode != 0 {
		return nil, &APIError{Code: session.ErrCode, Message: session.ErrMsg}
	}
	if session.OpenID == "" {
		return nil, ErrEmptyOpenID
	}

	return &session, nil
}

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/shapeupapp/backend/internal/profile"

	"github.com/stretchr/testify/require"
)

const testPassword = "test-password-123"

// registerTestUser creates a fresh account and returns the session token
// together with the created profile.
func registerTestUser(ctx context.Context, t *testing.T, username string) (string, *profile.UserProfile) {
	creds := profile.Credentials{
		Username: username,
		Password: testPassword,
	}
	credsJson, err := json.Marshal(creds)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/user/register", serverEndpoint), bytes.NewBuffer(credsJson))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, respBytes)

	var registerResp profile.LoginResponse
	require.NoError(t, json.Unmarshal(respBytes, &registerResp))
	require.NotEmpty(t, registerResp.Token)
	require.NotNil(t, registerResp.Profile)

	return registerResp.Token, registerResp.Profile
}

func doLogin(ctx context.Context, t *testing.T, username string) *profile.LoginResponse {
	creds := profile.Credentials{
		Username: username,
		Password: testPassword,
	}
	credsJson, err := json.Marshal(creds)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/user/login", serverEndpoint), bytes.NewBuffer(credsJson))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var loginResp profile.LoginResponse
	require.NoError(t, json.Unmarshal(respBytes, &loginResp))
	return &loginResp
}

// doRequest fires an authenticated request against the test server and
// returns the raw response, which the caller must close.
func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, token string, body []byte) *http.Response {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewBuffer(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-SHAPEUP-TOKEN", token)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	return resp
}

func decodeResponse[T any](s *IntegrationTestSuite, resp *http.Response) T {
	defer resp.Body.Close()
	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var out T
	s.Require().NoError(json.Unmarshal(respBytes, &out), "response: %s", respBytes)
	return out
}

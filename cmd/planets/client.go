// cmd/planets/client.go — shared REST client helpers.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type apiClient struct {
	base string
	http *http.Client
}

func newClient(base string) *apiClient {
	return &apiClient{
		base: base,
		http: &http.Client{Timeout: 5 * time.Minute},
	}
}

// getJSON fetches path and decodes the body into out.
func (c *apiClient) getJSON(path string, out any) error {
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// postJSON posts body to path and decodes the response into out.
func (c *apiClient) postJSON(path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.base+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiError(resp *http.Response) error {
	var envelope struct {
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
		return fmt.Errorf("%s: %s", resp.Status, envelope.Message)
	}
	return fmt.Errorf("%s", resp.Status)
}

//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

func TestSystem_E2E_CartFlow(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	email := fmt.Sprintf("collector_%d_%d@example.com", time.Now().Unix(), rand.Intn(100000))
	pass := "password123!"

	doJSON(t, http.MethodPost, baseURL+"/auth/register", map[string]any{
		"email":    email,
		"password": pass,
	}, nil, 201)

	var loginResp struct {
		AccessToken string `json:"access_token"`
	}
	doJSON(t, http.MethodPost, baseURL+"/auth/login", map[string]any{
		"email":    email,
		"password": pass,
	}, &loginResp, 200)
	if loginResp.AccessToken == "" {
		t.Fatalf("empty access_token")
	}

	var listing struct {
		Artworks []map[string]any `json:"artworks"`
		Count    int              `json:"count"`
	}
	doJSON(t, http.MethodGet, baseURL+"/artworks?q=warli", nil, &listing, 200)
	if listing.Count == 0 {
		t.Fatalf("expected warli artworks")
	}

	id, ok := listing.Artworks[0]["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("artwork id missing in response: %#v", listing.Artworks[0])
	}

	var cartBody struct {
		Items      []map[string]any `json:"items"`
		TotalItems int              `json:"total_items"`
		TotalPrice int64            `json:"total_price"`
	}
	doJSONAuth(t, http.MethodPost, baseURL+"/cart/items", loginResp.AccessToken, map[string]any{
		"artwork_id": int(id),
	}, &cartBody, 201)
	if cartBody.TotalItems != 1 {
		t.Fatalf("total_items=%d", cartBody.TotalItems)
	}

	doJSONAuth(t, http.MethodPost, baseURL+"/cart/items", loginResp.AccessToken, map[string]any{
		"artwork_id": int(id),
	}, &cartBody, 201)
	if len(cartBody.Items) != 1 || cartBody.TotalItems != 2 {
		t.Fatalf("cart=%+v", cartBody)
	}

	if os.Getenv("E2E_RESTART_CART") == "1" {
		restartCartContainer(t, ctx)
		waitReady(t, ctx, baseURL+"/readyz")

		doJSONAuth(t, http.MethodGet, baseURL+"/cart", loginResp.AccessToken, nil, &cartBody, 200)
		if cartBody.TotalItems != 2 {
			t.Fatalf("cart lost across restart: %+v", cartBody)
		}
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == 200 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func doJSON(t *testing.T, method, url string, body any, out any, want int) {
	t.Helper()
	doJSONAuth(t, method, url, "", body, out, want)
}

func doJSONAuth(t *testing.T, method, url, token string, body any, out any, want int) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		t.Fatalf("%s %s: status=%d want=%d", method, url, resp.StatusCode, want)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// End-to-end trip creation against a running API and database. Needs
// TRIPKIT_TEST_DSN (or TRIPKIT_DB_DSN) and the server listening on
// TRIPKIT_API_BASE_URL.
func TestTripCreationSeedsTemplateContent(t *testing.T) {
	dsn := firstNonEmpty(
		strings.TrimSpace(os.Getenv("TRIPKIT_TEST_DSN")),
		strings.TrimSpace(os.Getenv("TRIPKIT_DB_DSN")),
	)
	if dsn == "" {
		t.Skip("TRIPKIT_TEST_DSN not set")
	}
	baseURL := strings.TrimRight(envOrDefault("TRIPKIT_API_BASE_URL", "http://localhost:8080"), "/")
	client := &http.Client{Timeout: 30 * time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect postgres: %v", err)
	}
	t.Cleanup(db.Close)
	if err := db.Ping(ctx); err != nil {
		t.Fatalf("ping postgres: %v", err)
	}

	waitForAPIReady(t, client, baseURL)

	payload, _ := json.Marshal(map[string]any{
		"name":        fmt.Sprintf("통합테스트 %d", time.Now().UnixNano()),
		"destination": "세부",
		"start_date":  "2026-10-01",
		"end_date":    "2026-10-04",
		"use_ai":      false,
	})
	resp, err := client.Post(baseURL+"/api/trips", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create trip: expected 201, got %d, body=%s", resp.StatusCode, string(body))
	}

	var created struct {
		Trip struct {
			ID   string `json:"id"`
			Days int    `json:"days"`
		} `json:"trip"`
		ContentSource string `json:"content_source"`
		Generated     struct {
			Checklists int `json:"checklists"`
			Items      int `json:"items"`
		} `json:"generated"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("unmarshal create response: %v, raw=%s", err, string(body))
	}
	tripID := created.Trip.ID

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		_, _ = db.Exec(cleanupCtx, "DELETE FROM trips WHERE id = $1", tripID)
	})

	if created.Trip.Days != 4 {
		t.Fatalf("expected 4 days, got %d", created.Trip.Days)
	}
	if created.ContentSource != "template" {
		t.Fatalf("expected template content source, got %q", created.ContentSource)
	}
	if created.Generated.Checklists == 0 || created.Generated.Items == 0 {
		t.Fatalf("expected seeded checklists and items, got %+v", created.Generated)
	}

	// The Cebu template at 4 days includes the whale shark tour entry.
	var count int
	if err := db.QueryRow(ctx, `
		SELECT COUNT(*) FROM checklists
		WHERE trip_id = $1 AND title = '오슬롭 고래상어 투어 예약'`, tripID,
	).Scan(&count); err != nil {
		t.Fatalf("query checklists: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected the Cebu tour checklist entry once, got %d", count)
	}

	// Detail endpoint returns the records and zeroed progress.
	resp, err = client.Get(baseURL + "/api/trips/" + tripID)
	if err != nil {
		t.Fatalf("get trip detail: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("trip detail: expected 200, got %d, body=%s", resp.StatusCode, string(body))
	}
	var detail struct {
		Progress struct {
			Checklist float64 `json:"checklist"`
		} `json:"progress"`
		Records struct {
			Checklists []json.RawMessage `json:"checklists"`
			Wishlists  []json.RawMessage `json:"wishlists"`
		} `json:"records"`
	}
	if err := json.Unmarshal(body, &detail); err != nil {
		t.Fatalf("unmarshal detail: %v, raw=%s", err, string(body))
	}
	if len(detail.Records.Checklists) == 0 {
		t.Fatalf("expected checklists in detail, raw=%s", string(body))
	}
	if len(detail.Records.Wishlists) == 0 {
		t.Fatalf("expected wishlists in detail, raw=%s", string(body))
	}
	if detail.Progress.Checklist != 0 {
		t.Fatalf("expected 0%% checklist progress on a fresh trip, got %v", detail.Progress.Checklist)
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/health", nil)
		if err == nil {
			resp, err := client.Do(req)
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return
				}
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}

package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseModelContentPlainJSON(t *testing.T) {
	got, err := parseModelContent("grilled salmon", `{"calories": 230, "protein": 25, "cost": 3.50}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Calories != 230 || got.Protein != 25 {
		t.Fatalf("got %d cal / %d g, want 230 / 25", got.Calories, got.Protein)
	}
	if !got.Cost.Equal(decimal.RequireFromString("3.50")) {
		t.Fatalf("cost = %s, want 3.50", got.Cost)
	}
	if got.Description != "grilled salmon" {
		t.Fatalf("description = %q", got.Description)
	}
}

func TestParseModelContentStripsCodeFences(t *testing.T) {
	content := "```json\n{\"calories\": 500, \"protein\": 40, \"cost\": 6.25}\n```"
	got, err := parseModelContent("steak dinner", content)
	if err != nil {
		t.Fatalf("parse fenced content: %v", err)
	}
	if got.Calories != 500 || got.Protein != 40 {
		t.Fatalf("got %d cal / %d g, want 500 / 40", got.Calories, got.Protein)
	}
}

func TestParseModelContentCoercesMissingFields(t *testing.T) {
	got, err := parseModelContent("water", `{"calories": 0, "protein": 0, "cost": 0}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Calories != 200 {
		t.Fatalf("zero calories should coerce to 200, got %d", got.Calories)
	}
	if got.Protein != 10 {
		t.Fatalf("zero protein should coerce to 10, got %d", got.Protein)
	}
	if !got.Cost.Equal(decimal.RequireFromString("3.00")) {
		t.Fatalf("zero cost should coerce to 3.00, got %s", got.Cost)
	}
}

func TestParseModelContentRejectsGarbage(t *testing.T) {
	if _, err := parseModelContent("pizza", "sorry, I can't help with that"); err == nil {
		t.Fatal("expected parse error for non-JSON content")
	}
}

func TestCallGatewayRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"calories": 650, "protein": 30, "cost": 8.00}`}},
			},
		})
	}))
	defer srv.Close()

	svc := &AnalyzeService{
		apiKey: "test-key",
		apiURL: srv.URL,
		model:  "test-model",
		client: &http.Client{Timeout: 5 * time.Second},
	}

	got, err := svc.callGateway("burrito")
	if err != nil {
		t.Fatalf("callGateway: %v", err)
	}
	if got.Calories != 650 || got.Protein != 30 {
		t.Fatalf("got %d cal / %d g, want 650 / 30", got.Calories, got.Protein)
	}
}

func TestCallGatewayNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream quota exceeded", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	svc := &AnalyzeService{
		apiKey: "test-key",
		apiURL: srv.URL,
		model:  "test-model",
		client: &http.Client{Timeout: 5 * time.Second},
	}

	if _, err := svc.callGateway("burrito"); err == nil {
		t.Fatal("expected error for non-200 gateway response")
	}
}

func TestCallGatewayRequiresKey(t *testing.T) {
	svc := &AnalyzeService{client: &http.Client{Timeout: time.Second}}
	if _, err := svc.callGateway("anything"); err == nil {
		t.Fatal("expected error when AI_GATEWAY_KEY is not configured")
	}
}

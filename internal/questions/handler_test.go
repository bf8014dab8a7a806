package questions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRawHandlerWithoutAuth(t *testing.T) {
	logs := &fakeLogs{}
	svc := NewService(&fakeProvider{response: "hello there"}, nil, logs)
	h := NewHandler(svc)

	// no claims in the request context
	req := httptest.NewRequest(http.MethodPost, "/generate-raw", strings.NewReader(`{"prompt":"hi"}`))
	rec := httptest.NewRecorder()
	h.Raw(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		OK   bool   `json:"ok"`
		Text string `json:"text"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if !body.OK || body.Text != "hello there" {
		t.Errorf("response wrong: %+v", body)
	}

	if len(logs.entries) != 1 {
		t.Fatalf("want 1 prompt log, got %d", len(logs.entries))
	}
	if logs.entries[0].UserID != nil {
		t.Error("anonymous prompts must log without a user id")
	}
}

func TestRawHandlerRequiresPrompt(t *testing.T) {
	h := NewHandler(NewService(&fakeProvider{response: "ok"}, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/generate-raw", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Raw(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing prompt must 400, got %d", rec.Code)
	}
}

func TestRawHandlerRejectsBadBody(t *testing.T) {
	h := NewHandler(NewService(&fakeProvider{response: "ok"}, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/generate-raw", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	h.Raw(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body must 400, got %d", rec.Code)
	}
}

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondError(t *testing.T) {
	resp := httptest.NewRecorder()
	RespondError(resp, http.StatusInternalServerError, "Ошибка сервера")

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var got map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got["error"] != "Ошибка сервера" {
		t.Fatalf("expected only an error field, got %v", got)
	}
}

func TestRespondJSON(t *testing.T) {
	resp := httptest.NewRecorder()
	RespondJSON(resp, http.StatusCreated, struct {
		Reply string `json:"reply"`
	}{Reply: "<b>"})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["reply"] != "<b>" {
		t.Fatalf("unexpected reply %q", got["reply"])
	}
}

func TestRespondJSONUnencodablePayload(t *testing.T) {
	resp := httptest.NewRecorder()
	RespondJSON(resp, http.StatusOK, make(chan int))

	if resp.Code != http.StatusOK {
		t.Fatalf("status must be kept, got %d", resp.Code)
	}
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"labreserve/models"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestClient_List(t *testing.T) {
	want := []models.Reservation{
		{Name: "Ada", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00", Equipment: "Glove Box"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", 0, nil)
	got, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("List() = %+v, want %+v", got, want)
	}
}

func TestClient_Append(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, key := range []string{"name", "date", "startTime", "endTime", "equipment"} {
			if _, ok := body[key]; !ok {
				t.Errorf("payload missing %q", key)
			}
		}
		if _, ok := body["id"]; ok {
			t.Error("payload carries an id before it was stored")
		}

		body["id"] = "abc"
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	in := models.Reservation{Name: "Ada", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00", Equipment: "Chamber"}
	saved, err := c.Append(context.Background(), in)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if saved.ID != "abc" || saved.Equipment != "Chamber" {
		t.Errorf("Append() = %+v", saved)
	}
}

func TestClient_NonOKStatus(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusBadRequest, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`[]`))
		}))

		c := NewClient(srv.URL, 0, nil)
		if _, err := c.List(context.Background()); !errors.Is(err, ErrUnexpectedStatus) {
			t.Errorf("List() with status %d error = %v, want ErrUnexpectedStatus", status, err)
		}
		if _, err := c.Append(context.Background(), models.Reservation{}); !errors.Is(err, ErrUnexpectedStatus) {
			t.Errorf("Append() with status %d error = %v, want ErrUnexpectedStatus", status, err)
		}
		srv.Close()
	}
}

func TestClient_FailureLoggedAtDebugOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	c := NewClient(srv.URL, 0, zap.New(core))
	if _, err := c.Append(context.Background(), models.Reservation{}); err == nil {
		t.Fatal("expected Append() to fail")
	}
	if _, err := c.List(context.Background()); err == nil {
		t.Fatal("expected List() to fail")
	}

	if n := logs.FilterLevelExact(zapcore.DebugLevel).Len(); n != 2 {
		t.Errorf("debug entries = %d, want 2", n)
	}
	if n := logs.Len() - logs.FilterLevelExact(zapcore.DebugLevel).Len(); n != 0 {
		t.Errorf("client logged %d entries above debug, want 0: %+v", n, logs.All())
	}
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, nil)
	if _, err := c.List(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, 0, nil)
	if _, err := c.List(context.Background()); err == nil {
		t.Error("expected transport error")
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(srv.URL, 50*time.Millisecond, nil)
	_, err := c.List(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("List() error = %v, want deadline exceeded", err)
	}
}

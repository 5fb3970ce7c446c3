package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"labreserve/models"
)

// memStore is an in-memory stand-in for the remote endpoint.
type memStore struct {
	mu       sync.Mutex
	items    []models.Reservation
	failPost bool
}

func (m *memStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(m.items)
	case http.MethodPost:
		if m.failPost {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var res models.Reservation
		if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		res.ID = "id-" + res.StartTime
		m.items = append(m.items, res)
		_ = json.NewEncoder(w).Encode(res)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func newStore(t *testing.T, items ...models.Reservation) (*memStore, string) {
	t.Helper()
	store := &memStore{items: items}
	srv := httptest.NewServer(store)
	t.Cleanup(srv.Close)
	return store, srv.URL
}

func TestRootCommand_Help(t *testing.T) {
	out, err := run(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "labreserve") {
		t.Errorf("help output missing command name: %q", out)
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"list", "reserve", "equipment", "serve"} {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version output = %q", out)
	}
}

func TestEquipmentCommand(t *testing.T) {
	out, err := run(t, "equipment")
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{"A - High-Speed Camera", "F - Compressing Machine", "G - Others"} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestListCommand(t *testing.T) {
	_, url := newStore(t)
	out, err := run(t, "list", "--store-url", url)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No slots reserved yet.") {
		t.Errorf("output = %q", out)
	}

	_, url = newStore(t, models.Reservation{Name: "Ada", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00", Equipment: "Glove Box"})
	out, err = run(t, "list", "--store-url", url)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Ada reserved Glove Box on 2024-06-01 from 09:00 to 10:00") {
		t.Errorf("output = %q", out)
	}
}

func TestListCommand_StoreDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := run(t, "list", "--store-url", url); err == nil {
		t.Error("expected error when the store is unreachable")
	}
}

func TestReserveCommand(t *testing.T) {
	existing := models.Reservation{Name: "Ada", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00", Equipment: "Glove Box"}

	t.Run("conflict", func(t *testing.T) {
		store, url := newStore(t, existing)
		out, err := run(t, "reserve", "--store-url", url,
			"--name", "Bob", "--date", "2024-06-01", "--start", "09:30", "--end", "10:30", "-e", "Glove Box")
		if !errors.Is(err, errNotReserved) {
			t.Fatalf("error = %v, want errNotReserved", err)
		}
		if !strings.Contains(out, "The selected equipment is already reserved for the specified time period.") {
			t.Errorf("output missing conflict message:\n%s", out)
		}
		if len(store.items) != 1 {
			t.Errorf("store has %d items, want 1", len(store.items))
		}
	})

	t.Run("adjacent accepted", func(t *testing.T) {
		store, url := newStore(t, existing)
		out, err := run(t, "reserve", "--store-url", url,
			"--name", "Bob", "--date", "2024-06-01", "--start", "10:00", "--end", "11:00", "-e", "B")
		if err != nil {
			t.Fatalf("error = %v\n%s", err, out)
		}
		if len(store.items) != 2 || store.items[1].Equipment != "Glove Box" {
			t.Errorf("store items = %+v", store.items)
		}
		if !strings.Contains(out, "Bob reserved Glove Box on 2024-06-01 from 10:00 to 11:00") {
			t.Errorf("output missing new line:\n%s", out)
		}
	})

	t.Run("others", func(t *testing.T) {
		store, url := newStore(t)
		_, err := run(t, "reserve", "--store-url", url,
			"--name", "Bob", "--date", "2024-06-01", "--start", "10:00", "--end", "11:00",
			"-e", "Chamber", "-e", "Others", "--other", "Tube furnace")
		if err != nil {
			t.Fatal(err)
		}
		if got := store.items[0].Equipment; got != "Tube furnace" {
			t.Errorf("Equipment = %q, want Tube furnace", got)
		}
	})

	t.Run("incomplete", func(t *testing.T) {
		store, url := newStore(t)
		_, err := run(t, "reserve", "--store-url", url, "--name", "Bob", "--date", "2024-06-01")
		if !errors.Is(err, errNotReserved) {
			t.Fatalf("error = %v, want errNotReserved", err)
		}
		if len(store.items) != 0 {
			t.Errorf("store has %d items, want 0", len(store.items))
		}
	})

	t.Run("store failure", func(t *testing.T) {
		store, url := newStore(t)
		store.failPost = true
		_, err := run(t, "reserve", "--store-url", url,
			"--name", "Bob", "--date", "2024-06-01", "--start", "10:00", "--end", "11:00", "-e", "Chamber")
		if !errors.Is(err, errNotReserved) {
			t.Fatalf("error = %v, want errNotReserved", err)
		}
	})

	t.Run("date out of range", func(t *testing.T) {
		_, url := newStore(t)
		_, err := run(t, "reserve", "--store-url", url,
			"--name", "Bob", "--date", "2026-01-01", "--start", "10:00", "--end", "11:00", "-e", "Chamber")
		if err == nil || !strings.Contains(err.Error(), "date must be between") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("unknown equipment", func(t *testing.T) {
		_, url := newStore(t)
		_, err := run(t, "reserve", "--store-url", url, "-e", "Laser")
		if err == nil || !strings.Contains(err.Error(), "unknown equipment") {
			t.Errorf("error = %v", err)
		}
	})
}

func TestReserveCommand_JSON(t *testing.T) {
	_, url := newStore(t)
	out, err := run(t, "reserve", "--json", "--store-url", url,
		"--name", "Bob", "--date", "2024-06-01", "--start", "10:00", "--end", "11:00", "-e", "Chamber")
	if err != nil {
		t.Fatal(err)
	}

	var state struct {
		Reservations []models.Reservation `json:"reservations"`
		Error        string               `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &state); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(state.Reservations) != 1 || state.Reservations[0].ID != "id-10:00" {
		t.Errorf("reservations = %+v", state.Reservations)
	}
}

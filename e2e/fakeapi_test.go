//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeAPI serves the bus-booking endpoints the app calls
type fakeAPI struct {
	mu       sync.Mutex
	requests []string
	server   *httptest.Server
}

var fakeCities = []map[string]string{
	{"_id": "c1", "name": "Bengaluru", "state": "Karnataka", "country": "India"},
	{"_id": "c2", "name": "Belagavi", "state": "Karnataka", "country": "India"},
	{"_id": "c3", "name": "Chennai", "state": "Tamil Nadu", "country": "India"},
}

func newFakeAPI(t *testing.T) *fakeAPI {
	f := &fakeAPI{}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/countries", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": true, "data": []map[string]any{
			{"_id": "in", "name": "India", "availableLanguages": []string{"English", "Hindi"}},
		}})
	})
	mux.HandleFunc("GET /api/v1/city/search", func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("query")))
		var out []map[string]string
		for _, c := range fakeCities {
			if strings.HasPrefix(strings.ToLower(c["name"]), q) {
				out = append(out, c)
			}
		}
		writeJSON(w, map[string]any{"success": true, "data": out})
	})
	mux.HandleFunc("GET /api/v1/bus/search", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": true, "data": []map[string]any{{
			"_id":            "b1",
			"name":           "Night Rider",
			"busNumber":      "KA-01-1234",
			"from":           r.URL.Query().Get("from"),
			"to":             r.URL.Query().Get("to"),
			"departureTime":  "21:30",
			"arrivalTime":    "05:45",
			"date":           r.URL.Query().Get("date") + "T00:00:00Z",
			"price":          1250,
			"seatsAvailable": 12,
			"routeId": map[string]any{
				"_id":           "r1",
				"routeNumber":   "R-7",
				"routeName":     "Coastal Express",
				"startLocation": "Bengaluru",
				"endLocation":   "Chennai",
				"distance":      346,
				"estimatedTime": 495,
				"stops": []map[string]any{
					{"_id": "s1", "stop_name": "Majestic"},
					{"_id": "s2", "stop_name": "Hosur"},
					{"_id": "s3", "stop_name": "Koyambedu"},
				},
			},
		}}})
	})
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(w, map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		writeJSON(w, map[string]any{
			"success": true,
			"token":   "not-a-jwt",
			"user":    map[string]string{"_id": "u1", "firstName": "Asha", "lastName": "Rao", "email": body["email"]},
		})
	})
	mux.HandleFunc("POST /api/v1/auth/verify-otp", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["otp"] != "123456" {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, map[string]any{"success": false, "message": "Invalid OTP"})
			return
		}
		writeJSON(w, map[string]any{"success": true, "message": "Verified"})
	})
	mux.HandleFunc("POST /api/v1/auth/resend-otp", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": true, "message": "OTP resent", "remainingTime": 60})
	})

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		f.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.server.Close)
	return f
}

// URL is the API base URL to pass to the app
func (f *fakeAPI) URL() string {
	return f.server.URL + "/api/v1"
}

// Count returns how many requests matched "METHOD path"
func (f *fakeAPI) Count(request string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r == request {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bustrip/internal/domain"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchCitiesEncodesQueryAndCaches(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/api/v1/city/search", r.URL.Path)
		assert.Equal(t, "New Del", r.URL.Query().Get("query"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"success":true,"data":[{"_id":"c1","name":"New Delhi","state":"Delhi","country":"India"}]}`))
	})

	c := New(srv.URL+"/api/v1/", time.Second, WithCityCache(time.Minute))

	cities, err := c.SearchCities(context.Background(), "New Del")
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, domain.City{ID: "c1", Name: "New Delhi", State: "Delhi", Country: "India"}, cities[0])

	_, err = c.SearchCities(context.Background(), "New Del")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCityCacheExpires(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"success":true,"data":[{"_id":"p","name":"Pune"}]}`))
	})

	c := New(srv.URL, time.Second, WithCityCache(50*time.Millisecond))
	for _, q := range []string{"Pune", " pune "} {
		_, err := c.SearchCities(context.Background(), q)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), hits.Load(), "queries are normalized before caching")

	time.Sleep(150 * time.Millisecond)
	_, err := c.SearchCities(context.Background(), "Pune")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestSearchCitiesEmptyIsNotAnError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	cities, err := New(srv.URL, time.Second).SearchCities(context.Background(), "zzz")
	require.NoError(t, err)
	assert.NotNil(t, cities)
	assert.Empty(t, cities)
}

func TestNon2xxIsDistinguishableFailure(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"success":false,"message":"maintenance"}`))
	})

	_, err := New(srv.URL, time.Second).SearchCities(context.Background(), "Pune")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "maintenance", apiErr.Message)
	assert.Equal(t, "/city/search", apiErr.Path)
}

func TestTimeoutSurfacesAsError(t *testing.T) {
	release := make(chan struct{})
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := New(srv.URL, time.Second).SearchCities(ctx, "Pune")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSearchBuses(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Jaipur", q.Get("from"))
		assert.Equal(t, "Delhi", q.Get("to"))
		assert.Equal(t, "2025-07-21", q.Get("date"))
		w.Write([]byte(`{"data":[{
			"_id":"687f808f5ceda81e7c266644","name":"Shatabdi Deluxe","busNumber":"DL1234",
			"routeId":{"_id":"r1","routeNumber":"100","routeName":"Airport Shuttle","distance":18.4,"estimatedTime":45,
				"stops":[{"_id":"s1","stop_name":"Balotra Depo","arrival_time":"2025-07-21T08:00:00.000Z","departure_time":"2025-07-21T08:05:00.000Z","coordinates":{"lat":40.7128,"lng":-74.006}}]},
			"from":"Jaipur","to":"Delhi","departureTime":"08:30","arrivalTime":"13:00",
			"date":"2025-07-21T00:00:00.000Z","price":450,"seatsAvailable":32}]}`))
	})

	buses, err := New(srv.URL, time.Second).SearchBuses(context.Background(),
		domain.BusSearchRequest{From: "Jaipur", To: "Delhi", Date: "2025-07-21"})
	require.NoError(t, err)
	require.Len(t, buses, 1)

	b := buses[0]
	assert.Equal(t, "DL1234", b.Number)
	assert.Equal(t, "Airport Shuttle", b.Route.Name)
	require.Len(t, b.Route.Stops, 1)
	assert.Equal(t, "Balotra Depo", b.Route.Stops[0].Name)
	assert.Equal(t, time.Date(2025, 7, 21, 8, 30, 0, 0, time.UTC), b.Departure())
}

func TestCountriesAcceptsArrayOrObject(t *testing.T) {
	body := `{"success":true,"data":[{"_id":"1","name":"India","availableLanguages":["English","Tamil"]}]}`
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
	c := New(srv.URL, time.Second)

	list, err := c.Countries(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"English", "Tamil"}, list[0].AvailableLanguages)

	body = `{"success":true,"data":{"_id":"2","name":"Japan","availableLanguages":["English"]}}`
	list, err = c.Countries(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Japan", list[0].Name)
}

func TestLoginSendsBodyAndToken(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "Bearer old", r.Header.Get("Authorization"))

		var req LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "laxman@example.com", req.Email)

		w.Write([]byte(`{"success":true,"token":"new","user":{"_id":"u1","firstName":"Laxman","email":"laxman@example.com"},"message":"ok"}`))
	})

	c := New(srv.URL, time.Second, WithTokenSource(func() string { return "old" }))
	resp, err := c.Login(context.Background(), LoginRequest{Email: "laxman@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "new", resp.Token)
	assert.Equal(t, "Laxman", resp.User.FirstName)
}

func TestRejectedLoginIsError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
	})

	_, err := New(srv.URL, time.Second).Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "secret1"})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestUnauthorized(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := New(srv.URL, time.Second).VerifyOTP(context.Background(), "a@b.co", "123456")
	assert.True(t, IsUnauthorized(err))
}

func TestValidationHappensBeforeNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) { hits.Add(1) })
	c := New(srv.URL, time.Second)

	_, err := c.Register(context.Background(), RegisterRequest{Email: "nope", Password: "123"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Firstname is required", verr.Fields["firstName"])
	assert.Equal(t, "Lastname is required", verr.Fields["lastName"])
	assert.Equal(t, "Invalid email address", verr.Fields["email"])
	assert.Equal(t, "Password must be at least 6 characters long", verr.Fields["password"])

	_, err = c.Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "12345678901234567"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Password must be no more than 16 characters long", verr.Fields["password"])

	_, err = c.VerifyOTP(context.Background(), "a@b.co", "12a456")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "OTP must be a number", verr.Fields["otp"])

	assert.Equal(t, int32(0), hits.Load())
}

func TestVerifyRejectsCodeOfWrongLength(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	})

	c := New(srv.URL, time.Second)
	_, err := c.VerifyOTP(context.Background(), "asha@example.com", "12")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "OTP must be 6 digits", verr.Fields["otp"])
	assert.Equal(t, int32(0), hits.Load())

	c = New(srv.URL, time.Second, WithCodeLength(4))
	_, err = c.VerifyOTP(context.Background(), "asha@example.com", "123456")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "OTP must be 4 digits", verr.Fields["otp"])

	_, err = c.VerifyOTP(context.Background(), "asha@example.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestValidateVerify(t *testing.T) {
	err := ValidateVerify(VerifyOTPRequest{Email: "asha@example.com", OTP: "12"}, 6)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "OTP must be 6 digits", verr.Fields["otp"])

	assert.NoError(t, ValidateVerify(VerifyOTPRequest{Email: "asha@example.com", OTP: "123456"}, 6))
	assert.NoError(t, ValidateVerify(VerifyOTPRequest{Email: "asha@example.com", OTP: "12"}, 0))
}

func TestResendOTP(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"message":"sent","remainingTime":60}`))
	})

	resp, err := New(srv.URL, time.Second).ResendOTP(context.Background(), "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, 60, resp.RemainingTime)
}

package domain

import "time"

// City is a searchable place buses run between
type City struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Country is an onboarding choice with the languages offered there
type Country struct {
	ID                 string   `json:"_id"`
	Name               string   `json:"name"`
	Image              string   `json:"image,omitempty"`
	AvailableLanguages []string `json:"availableLanguages"`
}

// Coordinates is a stop location
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Stop is one stop along a route
type Stop struct {
	ID            string      `json:"_id"`
	Name          string      `json:"stop_name"`
	ArrivalTime   time.Time   `json:"arrival_time"`
	DepartureTime time.Time   `json:"departure_time"`
	Coordinates   Coordinates `json:"coordinates"`
}

// Route describes the path a bus takes
type Route struct {
	ID            string  `json:"_id"`
	Number        string  `json:"routeNumber"`
	Name          string  `json:"routeName"`
	StartLocation string  `json:"startLocation"`
	EndLocation   string  `json:"endLocation"`
	Distance      float64 `json:"distance"`      // kilometres
	EstimatedTime int     `json:"estimatedTime"` // minutes
	Stops         []Stop  `json:"stops"`
	Status        string  `json:"status"`
}

// Bus is a single scheduled journey returned by a bus search
type Bus struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Number         string    `json:"busNumber"`
	Route          Route     `json:"routeId"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	DepartureTime  string    `json:"departureTime"` // "08:30"
	ArrivalTime    string    `json:"arrivalTime"`   // "13:00"
	Date           time.Time `json:"date"`
	Price          float64   `json:"price"`
	SeatsAvailable int       `json:"seatsAvailable"`
}

// Departure combines the journey date with the HH:MM departure time.
// Returns the zero time if the departure time is malformed.
func (b Bus) Departure() time.Time {
	t, err := time.Parse("15:04", b.DepartureTime)
	if err != nil {
		return time.Time{}
	}
	d := b.Date
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, d.Location())
}

// BusSearchRequest is what the home screen sends to the bus search endpoint
type BusSearchRequest struct {
	From string
	To   string
	Date string // YYYY-MM-DD
}

// User is the authenticated account
type User struct {
	ID          string    `json:"_id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	LastOTPSent time.Time `json:"lastOtpSent"`
}

// FullName returns the display name of the user
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

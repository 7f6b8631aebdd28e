package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventError               EventType = "Error"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
	EventSearchDispatched    EventType = "SearchDispatched"
	EventSearchCompleted     EventType = "SearchCompleted"
	EventSearchFailed        EventType = "SearchFailed"
	EventUserLoggedIn        EventType = "UserLoggedIn"
	EventUserLoggedOut       EventType = "UserLoggedOut"
	EventOnboardingCompleted EventType = "OnboardingCompleted"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path       string
	APIBaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// SearchDispatchedEvent is emitted when a debounced lookup goes out
type SearchDispatchedEvent struct {
	Term       string
	Generation uint64
}

func (e SearchDispatchedEvent) Type() EventType { return EventSearchDispatched }

// SearchCompletedEvent is emitted when a lookup result is applied.
// Stale results are never reported.
type SearchCompletedEvent struct {
	Term       string
	Generation uint64
	Count      int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a lookup fails
type SearchFailedEvent struct {
	Term       string
	Generation uint64
	Stale      bool
	Err        error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// UserLoggedInEvent is emitted after a session is established
type UserLoggedInEvent struct {
	User User
}

func (e UserLoggedInEvent) Type() EventType { return EventUserLoggedIn }

// UserLoggedOutEvent is emitted after a session is cleared
type UserLoggedOutEvent struct{}

func (e UserLoggedOutEvent) Type() EventType { return EventUserLoggedOut }

// OnboardingCompletedEvent is emitted when country and language are confirmed
type OnboardingCompletedEvent struct {
	Country  string
	Language string
}

func (e OnboardingCompletedEvent) Type() EventType { return EventOnboardingCompleted }

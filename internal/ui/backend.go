package ui

import (
	"context"

	"bustrip/internal/api"
	"bustrip/internal/domain"
)

// Backend is the slice of the API the screens call. *api.Client satisfies it.
type Backend interface {
	SearchCities(ctx context.Context, query string) ([]domain.City, error)
	SearchBuses(ctx context.Context, req domain.BusSearchRequest) ([]domain.Bus, error)
	Countries(ctx context.Context) ([]domain.Country, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.StatusResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	VerifyOTP(ctx context.Context, email, code string) (*api.StatusResponse, error)
	ResendOTP(ctx context.Context, email string) (*api.ResendOTPResponse, error)
}

var _ Backend = (*api.Client)(nil)

package services

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/mapperpro/kwify-provisioner/internal/config"
	"github.com/mapperpro/kwify-provisioner/internal/dto"
)

// AccountProvisioner creates an authentication account for a purchaser.
// All provider failures, duplicate email included, surface as a single
// error with a human-readable detail; the handler decides severity.
type AccountProvisioner interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (*dto.ProvisionedAccount, error)
}

// FirebaseProvisioner creates users through the Firebase Admin SDK.
// The underlying auth client is initialized once and reused across
// requests.
type FirebaseProvisioner struct {
	client  *auth.Client
	timeout time.Duration
}

func NewFirebaseProvisioner(ctx context.Context, cfg *config.Config) (*FirebaseProvisioner, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &FirebaseProvisioner{client: client, timeout: cfg.ProviderTimeout}, nil
}

func (p *FirebaseProvisioner) CreateAccount(ctx context.Context, email, password, displayName string) (*dto.ProvisionedAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// Email stays unverified on purpose; trust establishment belongs
	// to a separate flow.
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		EmailVerified(false)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase user: %w", err)
	}

	return &dto.ProvisionedAccount{
		AccountID:   record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}, nil
}

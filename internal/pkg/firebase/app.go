package firebase

import (
	"context"
	"encoding/base64"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"github.com/piresc/campusride/internal/pkg/models"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app from a credentials file, base64 encoded
// credentials, or application default credentials when neither is set.
// Emulators are picked up from FIRESTORE_EMULATOR_HOST and FIREBASE_AUTH_EMULATOR_HOST.
func NewApp(ctx context.Context, cfg models.FirebaseConfig) (*firebase.App, error) {
	opts, err := credentialOptions(cfg)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}
	return app, nil
}

func credentialOptions(cfg models.FirebaseConfig) ([]option.ClientOption, error) {
	switch {
	case cfg.CredentialsFile != "":
		return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile)}, nil
	case cfg.CredentialsBase64 != "":
		raw, err := base64.StdEncoding.DecodeString(cfg.CredentialsBase64)
		if err != nil {
			return nil, fmt.Errorf("error decoding base64 credentials: %w", err)
		}
		return []option.ClientOption{option.WithCredentialsJSON(raw)}, nil
	default:
		return nil, nil
	}
}

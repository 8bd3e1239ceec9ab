// Package dbtest opens Firestore emulator clients for integration tests.
package dbtest

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/piresc/campusride/internal/pkg/database"
)

// Firestore returns a client on a fresh emulator project, isolating each test's data.
// The test is skipped when FIRESTORE_EMULATOR_HOST is not set.
func Firestore(t testing.TB) *database.FirestoreClient {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("Skipping integration test - requires FIRESTORE_EMULATOR_HOST")
	}

	project := "campusride-test-" + uuid.NewString()[:8]
	client, err := firestore.NewClient(context.Background(), project)
	if err != nil {
		t.Fatalf("failed to open emulator client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return &database.FirestoreClient{Client: client}
}

//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
)

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
)

// GetSharedMongoDB starts the package-wide container on first use.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = SetupMongoDB(ctx)
	})
	return shared, sharedErr
}

// SetupTestMainWithMongoDB runs m against one shared container and removes it
// afterwards:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "mongodb test container: %v\n", err)
		return 1
	}

	code := m.Run()

	if err := shared.Cleanup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the connection string of the shared container.
// It panics when called outside SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	if shared == nil {
		panic("testutil: shared MongoDB container not started")
	}
	return shared.URI
}

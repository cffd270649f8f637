// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as persistence, HTTP communication, logging, and the system clipboard.
//
// The infrastructure package is organized by technical concern:
//
// - store/memory: In-memory store implementation backed by go-cache
// - store/sqlite: File-backed store that survives restarts
// - store/redis: Redis-based store for shared deployments
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger implementation
// - clipboard/system: OS clipboard writer
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Store Implementations
//
// Memory Store Example:
//
//	store := memory.NewStore()
//	err := store.Set(ctx, "key", []byte("value"))
//	value, err := store.Get(ctx, "key")
//
// SQLite Store Example:
//
//	store, err := sqlite.NewStore("collector.db")
//	defer store.Close()
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient GET
// failures; POSTs run exactly once:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.New("info")
//	logger.Info("Saved capture", map[string]interface{}{
//	    "url":  "https://example.com/page",
//	    "tabs": 3,
//	})
package infrastructure

package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Closure hooks
	c := NoopClosureHooks{}
	c.OnSaturationStart(ctx, 5, 2)
	c.OnSaturationRound(ctx, 1, 30, 28)
	c.OnSaturationComplete(ctx, 5, 60, 2, time.Second, nil)

	// Cache hooks
	ch := NoopCacheHooks{}
	ch.OnCacheHit(ctx, "closure")
	ch.OnCacheMiss(ctx, "closure")
	ch.OnCacheSet(ctx, "closure", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/closure")
	h.OnResponse(ctx, "POST", "/v1/closure", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Closure().(NoopClosureHooks); !ok {
		t.Error("Closure() should return NoopClosureHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customClosure := &testClosureHooks{}
	SetClosureHooks(customClosure)
	if Closure() != customClosure {
		t.Error("SetClosureHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Closure().(NoopClosureHooks); !ok {
		t.Error("Reset() should restore NoopClosureHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testClosureHooks{}
	SetClosureHooks(custom)

	// Setting nil should be ignored
	SetClosureHooks(nil)

	if Closure() != custom {
		t.Error("SetClosureHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testClosureHooks struct{ NoopClosureHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

func TestKey(t *testing.T) {
	testCases := []struct {
		parts []string
		want  string
	}{
		{[]string{"report", "2024"}, "resale:report:2024"},
		{[]string{"platforms", "2024", "2"}, "resale:platforms:2024:2"},
		{[]string{"years"}, "resale:years"},
	}
	for _, tc := range testCases {
		if got := Key(tc.parts...); got != tc.want {
			t.Errorf("Key(%q) = %q, want %q", tc.parts, got, tc.want)
		}
	}
}

// An unreachable Redis must behave as an always missing cache.
func TestCache_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	c := New(rdb, time.Minute)
	defer c.Close()

	ctx := context.Background()
	c.Set(ctx, Key("report", "2024"), []byte(`{}`))
	if b, ok := c.Get(ctx, Key("report", "2024")); ok {
		t.Errorf("Get() = %q, true; want a miss", b)
	}
}

func TestOpen_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := Open(ctx, "127.0.0.1:1", "", 0, time.Minute); err == nil {
		t.Error("Open() expected an error, got nil")
	}
}

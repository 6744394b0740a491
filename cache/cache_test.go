package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

var _ Cache = Noop{}
var _ Cache = (*RedisCache)(nil)

func TestNoopNeverHits(t *testing.T) {
	ctx := context.Background()
	var c Noop
	if err := c.Set(ctx, "k", 1, time.Minute); err != nil {
		t.Fatal(err)
	}
	var v int
	hit, err := c.Get(ctx, "k", &v)
	if err != nil || hit {
		t.Fatalf("Get = %v, %v", hit, err)
	}
}

func TestPingUnreachable(t *testing.T) {
	client := NewRedisClient(RedisConfig{Address: "127.0.0.1:1", PoolSize: 1})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := Ping(ctx, client); err == nil {
		t.Fatal("expected ping to fail")
	}
}

// Runs against a real server when REDIS_TEST_ADDR is set.
func TestRedisCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := NewRedisClient(RedisConfig{Address: addr, PoolSize: 2})
	defer client.Close()
	ctx := context.Background()
	if err := Ping(ctx, client); err != nil {
		t.Skip(err)
	}

	c := NewRedisCache(client, "hotel-test:")
	type hotel struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	in := []hotel{{1, "Grand Palace Hotel"}, {2, "Lakeview Palace"}}
	if err := c.Set(ctx, "featured", in, time.Minute); err != nil {
		t.Fatal(err)
	}
	var out []hotel
	hit, err := c.Get(ctx, "featured", &out)
	if err != nil || !hit || len(out) != 2 || out[1].Name != "Lakeview Palace" {
		t.Fatalf("Get = %v %v %+v", hit, err, out)
	}

	if err := c.Del(ctx, "featured"); err != nil {
		t.Fatal(err)
	}
	if hit, _ := c.Get(ctx, "featured", &out); hit {
		t.Error("expected miss after Del")
	}
}

package brandcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mailprism/mailprism/internal/taxonomy"
	"github.com/redis/go-redis/v9"
)

func newRedisLayer(t *testing.T) (*RedisLayer, *MemoryStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	backing := NewMemoryStore()
	return NewRedisLayer(rdb, backing, time.Minute), backing, mr
}

func TestRedisLayerReadThrough(t *testing.T) {
	layer, backing, mr := newRedisLayer(t)
	ctx := context.Background()

	// Entry exists only in the backing store.
	_ = backing.Put(ctx, Entry{BrandName: "Nykaa", Industry: taxonomy.IndustryBeauty, Confidence: 0.9, ClassifiedBy: ProvenanceKeyword})

	e, err := layer.Get(ctx, "Nykaa")
	if err != nil || e == nil {
		t.Fatalf("Get = %v, %v", e, err)
	}
	if e.Industry != taxonomy.IndustryBeauty {
		t.Errorf("entry = %+v", e)
	}

	// The read populated the hot path.
	if !mr.Exists("brandclass:nykaa") {
		t.Error("redis key not populated after read-through")
	}
}

func TestRedisLayerMiss(t *testing.T) {
	layer, _, _ := newRedisLayer(t)
	e, err := layer.Get(context.Background(), "nobody")
	if e != nil || err != nil {
		t.Errorf("miss = %v, %v, want nil, nil", e, err)
	}
}

func TestRedisLayerPutRefreshes(t *testing.T) {
	layer, _, mr := newRedisLayer(t)
	ctx := context.Background()

	err := layer.Put(ctx, Entry{BrandName: "Swiggy", Industry: taxonomy.IndustryFoodBeverage, Confidence: 0.8, ClassifiedBy: ProvenanceAI})
	if err != nil {
		t.Fatal(err)
	}
	if !mr.Exists("brandclass:swiggy") {
		t.Error("redis not refreshed after Put")
	}
}

func TestRedisLayerManualNotPoisoned(t *testing.T) {
	layer, backing, _ := newRedisLayer(t)
	ctx := context.Background()

	// Manual entry in the backing store.
	_ = backing.PutManual(ctx, Entry{BrandName: "Zomato", Industry: taxonomy.IndustryFoodBeverage, Confidence: 1})

	// The automatic write is skipped by the backing store; Redis must end up
	// holding the surviving manual entry, not the rejected value.
	err := layer.Put(ctx, Entry{BrandName: "Zomato", Industry: taxonomy.IndustryTravel, Confidence: 0.6, ClassifiedBy: ProvenanceAI})
	if err != nil {
		t.Fatal(err)
	}

	e, err := layer.Get(ctx, "Zomato")
	if err != nil || e == nil {
		t.Fatalf("Get = %v, %v", e, err)
	}
	if e.Industry != taxonomy.IndustryFoodBeverage || e.ClassifiedBy != ProvenanceManual {
		t.Errorf("hot path poisoned with rejected value: %+v", e)
	}
}

func TestRedisLayerDelete(t *testing.T) {
	layer, backing, mr := newRedisLayer(t)
	ctx := context.Background()

	_ = layer.Put(ctx, Entry{BrandName: "Croma", Industry: taxonomy.IndustryElectronics, ClassifiedBy: ProvenanceKeyword})
	if err := layer.Delete(ctx, "Croma"); err != nil {
		t.Fatal(err)
	}

	if mr.Exists("brandclass:croma") {
		t.Error("redis key not removed on delete")
	}
	if e, _ := backing.Get(ctx, "Croma"); e != nil {
		t.Error("backing entry not removed on delete")
	}
}

func TestRedisLayerDegradesWhenRedisDown(t *testing.T) {
	layer, backing, mr := newRedisLayer(t)
	ctx := context.Background()

	_ = backing.Put(ctx, Entry{BrandName: "Paytm", Industry: taxonomy.IndustryFinance, ClassifiedBy: ProvenanceKeyword})
	mr.Close()

	// Reads fall back to the backing store.
	e, err := layer.Get(ctx, "Paytm")
	if err != nil || e == nil {
		t.Fatalf("Get with redis down = %v, %v", e, err)
	}
	if e.Industry != taxonomy.IndustryFinance {
		t.Errorf("entry = %+v", e)
	}
}

package requestcache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/maturamate/maturamate-api/internal/requestcache"
)

func TestGetOrLoadAs(t *testing.T) {
	t.Run("LoadsOnce", func(t *testing.T) {
		c := requestcache.New()
		calls := 0
		load := func() ([]string, error) {
			calls++
			return []string{"analisi", "geometria"}, nil
		}

		first, err := requestcache.GetOrLoadAs(c, "topics", load)
		if err != nil {
			t.Fatalf("primo caricamento fallito: %v", err)
		}
		second, err := requestcache.GetOrLoadAs(c, "topics", load)
		if err != nil {
			t.Fatalf("secondo caricamento fallito: %v", err)
		}

		if calls != 1 {
			t.Errorf("il loader doveva essere invocato una sola volta, invocato %d volte", calls)
		}
		if len(first) != 2 || len(second) != 2 {
			t.Errorf("risultati inattesi: %v / %v", first, second)
		}
	})

	t.Run("ErrorsAreNotCached", func(t *testing.T) {
		c := requestcache.New()
		calls := 0
		load := func() (int, error) {
			calls++
			if calls == 1 {
				return 0, errors.New("store non raggiungibile")
			}
			return 42, nil
		}

		if _, err := requestcache.GetOrLoadAs(c, "k", load); err == nil {
			t.Fatal("il primo caricamento doveva fallire")
		}
		v, err := requestcache.GetOrLoadAs(c, "k", load)
		if err != nil || v != 42 {
			t.Fatalf("il secondo caricamento doveva riuscire: v=%d err=%v", v, err)
		}
	})

	t.Run("NilCacheFallsThrough", func(t *testing.T) {
		v, err := requestcache.GetOrLoadAs(nil, "k", func() (string, error) { return "ok", nil })
		if err != nil || v != "ok" {
			t.Fatalf("con cache nil il loader deve essere invocato direttamente: v=%q err=%v", v, err)
		}
	})
}

func TestContextPlumbing(t *testing.T) {
	ctx := context.Background()
	if requestcache.FromContext(ctx) != nil {
		t.Fatal("un contesto vuoto non deve contenere una cache")
	}

	ctx = requestcache.Inject(ctx)
	if requestcache.FromContext(ctx) == nil {
		t.Fatal("Inject doveva installare una cache nel contesto")
	}
}

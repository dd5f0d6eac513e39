// Package requestcache fornisce una cache read-through con durata pari a
// una singola richiesta HTTP. Evita che un passaggio di aggregazione emetta
// due volte la stessa query di catalogo; viene scartata a fine richiesta.
package requestcache

import (
	"context"
	"sync"
)

type contextKey struct{}

type Cache struct {
	mu     sync.Mutex
	values map[string]interface{}
}

func New() *Cache {
	return &Cache{values: make(map[string]interface{})}
}

// GetOrLoad restituisce il valore memorizzato per key, oppure invoca load e
// ne memorizza il risultato. Gli errori non vengono memorizzati: una lettura
// fallita può essere ritentata nella stessa richiesta. I caricamenti per
// chiavi duplicate vengono serializzati dal mutex.
func (c *Cache) GetOrLoad(key string, load func() (interface{}, error)) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.values[key]; ok {
		return v, nil
	}

	v, err := load()
	if err != nil {
		return nil, err
	}
	c.values[key] = v
	return v, nil
}

// GetOrLoadAs è la variante tipizzata di GetOrLoad.
func GetOrLoadAs[T any](c *Cache, key string, load func() (T, error)) (T, error) {
	if c == nil {
		return load()
	}
	v, err := c.GetOrLoad(key, func() (interface{}, error) {
		return load()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func Inject(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, New())
}

// FromContext restituisce la cache della richiesta corrente, o nil se il
// middleware non è installato (i chiamanti devono tollerare nil).
func FromContext(ctx context.Context) *Cache {
	c, _ := ctx.Value(contextKey{}).(*Cache)
	return c
}

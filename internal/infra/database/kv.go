package database

import (
	"context"
	"errors"
)

// KeyValueStore é a fronteira de armazenamento: chaves nomeadas guardando
// strings. Os valores gravados pelo CRM são arrays JSON.
type KeyValueStore interface {
	// Get retorna found=false quando a chave nunca foi gravada.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

var ErrStoreClosed = errors.New("store fechado")

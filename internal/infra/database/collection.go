package database

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

const (
	DefaultContactsKey      = "carretel_contacts"
	DefaultOpportunitiesKey = "carretel_opps"
)

// Collection espelha uma sequência ordenada de T numa única chave do store.
// Não guarda estado: quem é dono dos dados é o repositório.
type Collection[T any] struct {
	Store  KeyValueStore
	Key    string
	Seed   []T
	Logger *zap.Logger
}

func NewCollection[T any](store KeyValueStore, key string, seed []T, logger *zap.Logger) *Collection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection[T]{Store: store, Key: key, Seed: seed, Logger: logger}
}

// Load devolve a sequência gravada. Na primeira execução (chave ausente) ou
// se o valor gravado não puder ser lido, devolve uma cópia do seed.
// Um array vazio gravado continua vazio.
func (c *Collection[T]) Load(ctx context.Context) []T {
	raw, found, err := c.Store.Get(ctx, c.Key)
	if err != nil {
		c.Logger.Warn("falha ao ler coleção, usando seed", zap.String("key", c.Key), zap.Error(err))
		return c.seed()
	}
	if !found {
		c.Logger.Info("primeira execução, carregando seed", zap.String("key", c.Key), zap.Int("items", len(c.Seed)))
		return c.seed()
	}

	items, err := decode[T](raw)
	if err != nil {
		c.Logger.Warn("valor gravado inválido, usando seed", zap.String("key", c.Key), zap.Error(err))
		return c.seed()
	}
	return items
}

// Save grava a sequência inteira. Falhas são logadas e devolvidas; o chamador
// decide se ignora.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	raw, err := encode(items)
	if err != nil {
		c.Logger.Error("erro ao serializar coleção", zap.String("key", c.Key), zap.Error(err))
		return err
	}
	if err := c.Store.Set(ctx, c.Key, raw); err != nil {
		c.Logger.Error("erro ao persistir coleção", zap.String("key", c.Key), zap.Error(err))
		return err
	}
	return nil
}

func (c *Collection[T]) seed() []T {
	out := make([]T, len(c.Seed))
	copy(out, c.Seed)
	return out
}

func encode[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	body, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("erro ao converter coleção: %w", err)
	}
	return string(body), nil
}

func decode[T any](raw string) ([]T, error) {
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	if items == nil {
		// "null" gravado por versões antigas
		return nil, fmt.Errorf("coleção nula")
	}
	return items, nil
}

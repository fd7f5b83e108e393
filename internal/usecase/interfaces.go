package usecase

import "context"

// CollectionStore é o espelho durável de uma coleção (ver database.Collection).
type CollectionStore[T any] interface {
	Load(ctx context.Context) []T
	Save(ctx context.Context, items []T) error
}

// TextGenerator é o provedor externo de IA generativa.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

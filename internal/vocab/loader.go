// Package vocab loads the canonical profession and designation lists that the
// occupation and profession normalizers match against.
package vocab

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/profile-normalizer/internal/config"
	"github.com/profile-normalizer/internal/normalize"
)

// Source is the part of the store the loader needs
type Source interface {
	FetchVocabulary(ctx context.Context, table, nameColumn string) ([]string, error)
}

// Set holds the vocabularies for one process run
type Set struct {
	Professions  normalize.Vocabulary
	Designations normalize.Vocabulary
}

// Default returns the built-in vocabularies
func Default() Set {
	return Set{
		Professions:  normalize.NewVocabulary(normalize.DefaultProfessions),
		Designations: normalize.NewVocabulary(normalize.DefaultDesignations),
	}
}

// Load reads both lookup tables. A table that cannot be read is an error;
// an empty table falls back to the built-in list with a warning.
func Load(ctx context.Context, src Source, cfg config.StagingConfig) (Set, error) {
	professions, err := load(ctx, src, cfg.ProfessionTable, cfg.ProfessionColumn, normalize.DefaultProfessions)
	if err != nil {
		return Set{}, err
	}
	designations, err := load(ctx, src, cfg.DesignationTable, cfg.DesignationColumn, normalize.DefaultDesignations)
	if err != nil {
		return Set{}, err
	}

	if !professions.Contains(normalize.DefaultOccupation) {
		log.Warn().Str("table", cfg.ProfessionTable).Str("default", normalize.DefaultOccupation).
			Msg("Profession table has no entry for the occupation fallback")
	}

	log.Info().
		Int("professions", professions.Len()).
		Int("designations", designations.Len()).
		Msg("Vocabularies loaded")

	return Set{Professions: professions, Designations: designations}, nil
}

func load(ctx context.Context, src Source, table, column string, fallback []string) (normalize.Vocabulary, error) {
	names, err := src.FetchVocabulary(ctx, table, column)
	if err != nil {
		return normalize.Vocabulary{}, fmt.Errorf("failed to load %s: %w", table, err)
	}
	if len(names) == 0 {
		log.Warn().Str("table", table).Int("defaults", len(fallback)).
			Msg("Lookup table is empty, using built-in vocabulary")
		names = fallback
	}
	return normalize.NewVocabulary(names), nil
}

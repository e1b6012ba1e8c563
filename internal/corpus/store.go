package corpus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists corpus batches to PostgreSQL for inspection and reuse.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CreateBatch creates a corpus batch record and returns its ID.
func (s *Store) CreateBatch(ctx context.Context, inputPath string, stats Stats) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO corpus_batches (input_path, input_count, culled_count, sample_count, status)
		 VALUES ($1, $2, $3, $4, 'running')
		 RETURNING id`,
		inputPath, stats.Input, stats.Culled, stats.Samples,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create batch: %w", err)
	}
	return id, nil
}

// CompleteBatch marks a corpus batch as finished.
func (s *Store) CompleteBatch(ctx context.Context, batchID uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE corpus_batches SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, batchID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete batch: %w", err)
	}
	return nil
}

// SaveSamples bulk-inserts the samples of a batch.
func (s *Store) SaveSamples(ctx context.Context, batchID uuid.UUID, samples []Sample) error {
	batch := &pgx.Batch{}
	for i, sample := range samples {
		resumeJSON, err := json.Marshal(sample.ResumeJSON)
		if err != nil {
			return fmt.Errorf("failed to marshal sample %d label: %w", i, err)
		}
		configJSON, err := json.Marshal(sample.TemplateConfig)
		if err != nil {
			return fmt.Errorf("failed to marshal sample %d config: %w", i, err)
		}
		batch.Queue(
			`INSERT INTO corpus_samples (batch_id, source_index, text, resume_json, template_config, date_fmt)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			batchID, sample.SourceIndex, sample.Text, resumeJSON, configJSON, sample.DateFormat,
		)
	}
	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range samples {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save samples: %w", err)
		}
	}
	return nil
}

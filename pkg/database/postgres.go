package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommandTimeout bounds every database round trip. A slow database should
// fail fast rather than hang the request.
const CommandTimeout = 5 * time.Second

// Postgres owns the process-wide connection pool. The pool is created
// lazily on first use and torn down explicitly via Close; both operations
// are safe for concurrent callers.
type Postgres struct {
	mu         sync.Mutex
	pool       *pgxpool.Pool
	connString string
}

func NewPostgres(connString string) *Postgres {
	return &Postgres{connString: connString}
}

// Pool returns the shared connection pool, creating it on first use.
func (p *Postgres) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		return p.pool, nil
	}
	if p.connString == "" {
		return nil, errors.New("database: DATABASE_URL is not set")
	}

	config, err := pgxpool.ParseConfig(p.connString)
	if err != nil {
		return nil, fmt.Errorf("database: invalid connection string: %w", err)
	}

	// Fix for Supabase Transaction Mode (PgBouncer)
	// Prevents "prepared statement already exists" errors
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	config.MinConns = 1
	config.MaxConns = 5
	config.ConnConfig.ConnectTimeout = CommandTimeout

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("Database connection pool created")
	p.pool = pool
	return p.pool, nil
}

// Close tears down the pool. Closing a never-opened or already-closed
// handle is a no-op; a later Pool call re-opens.
func (p *Postgres) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
		log.Println("Database connection pool closed")
	}
}

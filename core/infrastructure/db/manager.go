package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Kalysbe/quik-api/core/config"
	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
)

// Pools owns the two engine pools for the lifetime of the process.
// It is constructed once at startup and handed to every component that
// needs a database, so there is no package-level connection state.
type Pools struct {
	Procedures *sql.DB // MSSQL, the procedure host
	Reads      *sql.DB // Postgres, the read store
}

// Open establishes both pools in parallel. If either engine is
// unreachable, any pool already opened is closed before returning.
func Open(cfg *config.Config) (*Pools, error) {
	log := logging.New("db")
	log.Infof("Connecting engine pools")

	pools := &Pools{}
	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		pool, err := OpenMSSQL(cfg.MSSQL)
		if err != nil {
			return fmt.Errorf("procedure host: %w", err)
		}
		log.Infof("Procedure host connected (%s:%d)", cfg.MSSQL.Host, cfg.MSSQL.Port)
		pools.Procedures = pool
		return nil
	})

	g.Go(func() error {
		pool, err := OpenPostgres(cfg.Postgres)
		if err != nil {
			return fmt.Errorf("read store: %w", err)
		}
		log.Infof("Read store connected (%s:%d)", cfg.Postgres.Host, cfg.Postgres.Port)
		pools.Reads = pool
		return nil
	})

	if err := g.Wait(); err != nil {
		pools.Close()
		return nil, err
	}

	return pools, nil
}

// Close closes both pools in parallel, collecting all errors.
func (p *Pools) Close() error {
	log := logging.New("db")

	var wg sync.WaitGroup
	errChan := make(chan error, 2)

	closePool := func(name string, pool *sql.DB) {
		defer wg.Done()
		if pool == nil {
			return
		}
		log.Debugf("Closing %s pool", name)
		if err := pool.Close(); err != nil {
			errChan <- fmt.Errorf("%s pool: %w", name, err)
		}
	}

	wg.Add(2)
	go closePool("procedure", p.Procedures)
	go closePool("read", p.Reads)
	wg.Wait()
	close(errChan)

	var errs []error
	for err := range errChan {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}

// Package reconciler периодически сверяет денормализованные счетчики профилей с исходными таблицами.
package reconciler

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/metrics"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultServiceTimeout      = 30 * time.Second
	defaultBatchSize      uint = 200
	defaultWorkers        uint = 4
	defaultInterval            = time.Hour
)

// Report итог одного прохода сверки.
type Report struct {
	Profiles int
	Drifts   []domain.CounterDrift
}

// Processor проходит по всем профилям страницами и пересчитывает их счетчики.
type Processor struct {
	svs       Servicer
	l         *logrus.Entry
	metrics   *metrics.ReconcileMetrics
	batchSize uint
	workers   uint
	interval  time.Duration
}

func New(svs Servicer, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "reconciler",
		"module":    "processor",
	})

	return &Processor{
		svs:       svs,
		l:         loggerEntry,
		batchSize: defaultBatchSize,
		workers:   defaultWorkers,
		interval:  defaultInterval,
	}
}

// SetBatchSize устанавливает кол-во профилей, читаемых за одну страницу.
func (p *Processor) SetBatchSize(size uint) *Processor {
	if size > 0 {
		p.batchSize = size
	}
	return p
}

// SetWorkers устанавливает кол-во параллельных транзакций пересчета внутри страницы.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// SetInterval устанавливает паузу между проходами в Run.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

func (p *Processor) SetMetrics(m *metrics.ReconcileMetrics) *Processor {
	p.metrics = m
	return p
}

// Run выполняет проход сразу после старта и далее каждые interval до отмены контекста.
// Ошибка прохода логируется, следующий проход выполняется по расписанию.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"batchSize": p.batchSize,
		"workers":   p.workers,
		"interval":  p.interval.String(),
	}).Info("Starting")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if _, err := p.RunOnce(ctx); err != nil && ctx.Err() == nil {
			p.l.WithError(err).Error("reconcile pass failed")
		}
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
		}
	}
}

// RunOnce выполняет один полный проход по профилям.
//
// Алгоритм работы:
//  1. Через сервисный слой читается страница id профилей по возрастанию (keyset, после последнего id).
//  2. Страница делится на непересекающиеся части по числу воркеров, каждая часть пересчитывается своей
//     транзакцией.
//  3. Найденные расхождения логируются и попадают в Report. Первая ошибка прерывает проход.
func (p *Processor) RunOnce(ctx context.Context) (*Report, error) {
	started := time.Now()
	report, err := p.pass(ctx)
	p.metrics.ObservePass(time.Since(started), err != nil)
	if err != nil {
		return report, err
	}

	p.l.WithFields(logrus.Fields{
		"profiles": report.Profiles,
		"drifts":   len(report.Drifts),
		"duration": time.Since(started).String(),
	}).Info("reconcile pass finished")
	return report, nil
}

func (p *Processor) pass(ctx context.Context) (*Report, error) {
	report := new(Report)
	var afterID int64
	for {
		ids, err := p.produce(ctx, afterID)
		if err != nil {
			return report, err
		}
		if len(ids) == 0 {
			return report, nil
		}

		drifts, workersErr := p.runWorkers(ctx, ids)
		report.Profiles += len(ids)
		report.Drifts = append(report.Drifts, drifts...)
		p.metrics.AddProfiles(len(ids))
		p.metrics.AddDrifts(drifts)
		if workersErr != nil {
			return report, workersErr
		}

		afterID = ids[len(ids)-1]
		if uint(len(ids)) < p.batchSize {
			return report, nil
		}
	}
}

func (p *Processor) produce(ctx context.Context, afterID int64) ([]int64, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	ids, err := p.svs.ProfilesAfter(produceCtx, afterID, p.batchSize)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	return ids, nil
}

// runWorkers пересчитывает части страницы параллельно. Части не пересекаются, поэтому транзакции воркеров
// не ждут блокировок друг друга.
func (p *Processor) runWorkers(ctx context.Context, ids []int64) ([]domain.CounterDrift, error) {
	chunkSize := (len(ids) + int(p.workers) - 1) / int(p.workers) //nolint:gosec

	var (
		mu     sync.Mutex
		drifts []domain.CounterDrift
	)
	g, gCtx := errgroup.WithContext(ctx)
	for workerID, chunk := range slices.Collect(slices.Chunk(ids, chunkSize)) {
		g.Go(func() error {
			chunkDrifts, err := p.reconcileChunk(gCtx, chunk)
			if err != nil {
				return fmt.Errorf("worker %d: %w", workerID+1, err)
			}
			for _, drift := range chunkDrifts {
				p.l.WithFields(logrus.Fields{
					"worker":   workerID + 1,
					"userID":   drift.UserID,
					"field":    drift.Field,
					"stored":   drift.Stored,
					"computed": drift.Computed,
				}).Warn("counter drift repaired")
			}

			mu.Lock()
			drifts = append(drifts, chunkDrifts...)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	slices.SortStableFunc(drifts, func(a, b domain.CounterDrift) int {
		return cmp.Compare(a.UserID, b.UserID)
	})
	return drifts, err //nolint:wrapcheck
}

func (p *Processor) reconcileChunk(ctx context.Context, ids []int64) ([]domain.CounterDrift, error) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	drifts, err := p.svs.ReconcileProfiles(reqCtx, ids)
	if err != nil {
		return nil, fmt.Errorf("reconcile profiles %d..%d: %w", ids[0], ids[len(ids)-1], err)
	}
	return drifts, nil
}

package inventory

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory/importer"
	"inventory-manager/feature/inventory/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ImportOptions controls one import run.
type ImportOptions struct {
	// Mode is merge (default) or replace.
	Mode string
	// DryRun computes the outcome without writing it. The report then lists every action.
	DryRun bool
	// Confirmed must be set for replace imports to be written.
	Confirmed bool
	// Observer receives progress messages. Defaults to debug logging.
	Observer importer.Observer
}

type rowSource func(ctx context.Context) ([][]string, error)

// Import reconciles already tokenized rows into the catalog.
func (s *Service) Import(ctx context.Context, source string, rows [][]string, opts ImportOptions) (*models.ImportReport, error) {
	return s.importRows(ctx, source, func(context.Context) ([][]string, error) { return rows, nil }, opts)
}

// ImportFile reads a csv, tsv or xlsx file and imports its rows. name selects the reader.
func (s *Service) ImportFile(ctx context.Context, name string, r io.Reader, opts ImportOptions) (*models.ImportReport, error) {
	return s.importRows(ctx, name, func(context.Context) ([][]string, error) {
		return importer.ReadRows(name, r)
	}, opts)
}

// ImportObject imports a file stored in the bucket. Concurrent identical requests share one run.
// The shared run is detached from the callers' cancellation, so one caller giving up does not
// fail the others. Only the observer of the caller that started the run receives progress.
func (s *Service) ImportObject(ctx context.Context, objectName string, opts ImportOptions) (*models.ImportReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	key := objectName + "|" + opts.Mode + "|" + strconv.FormatBool(opts.DryRun) + "|" + strconv.FormatBool(opts.Confirmed)
	runCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.importRows(runCtx, objectName, func(ctx context.Context) ([][]string, error) {
			obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
			if err != nil {
				return nil, objectError(objectName, err)
			}
			defer obj.Close()

			rows, err := importer.ReadRows(objectName, obj)
			if err != nil {
				return nil, objectError(objectName, err)
			}
			return rows, nil
		}, opts)
	})
	if shared {
		s.logger.Debug("Import shared with a concurrent request", zap.String("object", objectName))
	}
	if err != nil {
		return nil, err
	}
	return v.(*models.ImportReport), nil
}

func objectError(objectName string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, objectName)
	}
	return fmt.Errorf("failed to read %s: %w", objectName, err)
}

// ListImportObjects lists importable objects under prefix.
func (s *Service) ListImportObjects(ctx context.Context, prefix string) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if !importer.Supported(obj.Key) {
			continue
		}
		names = append(names, obj.Key)
	}
	return names, nil
}

func (s *Service) importRows(ctx context.Context, source string, read rowSource, opts ImportOptions) (*models.ImportReport, error) {
	mode, err := reconcile.ParseMode(opts.Mode)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()
	l := s.logger.With(zap.String("source", source), zap.String("mode", string(mode)))

	// Reading the file and loading the catalog are independent.
	var rows [][]string
	var existing []models.Product
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = read(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		existing, err = s.store.Load(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	layout := importer.DetectLayout(rows)
	observer := opts.Observer
	if observer == nil {
		observer = importer.LogObserver(l)
	}

	candidates, err := importer.ParseLayout(ctx, layout, importer.Options{
		ExistingMaxID: maxID(existing),
		ImportTime:    start,
		Config:        s.cfg,
		Observer:      observer,
	})
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		l.Info("Import skipped, no rows")
		return nil, ErrNoCandidates
	}

	plan, err := reconcile.Reconcile[models.Product](ctx, s.adapter, existing, candidates, reconcile.Options{Mode: mode})
	if err != nil {
		return nil, err
	}
	for _, dup := range plan.DuplicateKeys {
		l.Warn("Duplicate key in catalog, first record wins",
			zap.String("field", dup.Field),
			zap.String("value", dup.Value),
			zap.Ints("ids", dup.IDs),
		)
	}

	applied, err := reconcile.ApplyPlan[models.Product](ctx, s.store, plan, reconcile.ApplyOptions{
		DryRun:    opts.DryRun,
		Confirmed: mode == reconcile.ModeMerge || opts.Confirmed,
	})
	if err != nil {
		l.Error("Import failed", zap.Error(err))
		return nil, err
	}

	report := &models.ImportReport{
		Source:        source,
		Mode:          mode,
		DryRun:        opts.DryRun,
		Applied:       applied,
		Rows:          len(layout.Rows),
		Candidates:    len(candidates),
		Summary:       plan.Summary,
		DuplicateKeys: plan.DuplicateKeys,
		StartedAt:     start,
		Duration:      s.now().Sub(start).String(),
	}
	if opts.DryRun {
		report.Actions = plan.Actions
	}

	l.Info("Import finished",
		zap.Bool("applied", applied),
		zap.Int("updated", plan.Summary.Updated),
		zap.Int("added", plan.Summary.Added),
		zap.Int("total", plan.Summary.Total),
	)
	return report, nil
}

func maxID(products []models.Product) int {
	m := 0
	for _, p := range products {
		if p.ID > m {
			m = p.ID
		}
	}
	return m
}

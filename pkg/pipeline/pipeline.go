// pkg/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/dataset"
	"github.com/peopleops/hr-insights/pkg/model"
	"github.com/peopleops/hr-insights/pkg/report"
	"github.com/peopleops/hr-insights/pkg/source"
)

// Pipeline orchestrates one analysis session:
// load -> reindex -> unify -> validate -> report.
// Each stage fully consumes its input before the next starts; the
// unified table is read-only once built.
type Pipeline struct {
	loader    source.Loader
	reindexer *dataset.Reindexer
	unifier   *dataset.Unifier
	assembler *report.Assembler
	metrics   *StageMetrics
	logger    *zap.Logger
	sessionID string
}

// New creates a pipeline over a source loader.
func New(loader source.Loader, logger *zap.Logger) *Pipeline {
	sessionID := uuid.New().String()
	logger = logger.With(zap.String("sessionID", sessionID))
	return &Pipeline{
		loader:    loader,
		reindexer: dataset.NewReindexer(logger),
		unifier:   dataset.NewUnifier(logger),
		assembler: report.NewAssembler(logger),
		metrics:   NewStageMetrics(),
		logger:    logger,
		sessionID: sessionID,
	}
}

// SessionID returns the unique identifier of this analysis session.
func (p *Pipeline) SessionID() string {
	return p.sessionID
}

// Metrics returns the stage metrics collector.
func (p *Pipeline) Metrics() *StageMetrics {
	return p.metrics
}

// Run executes the full pipeline and returns the assembled report.
func (p *Pipeline) Run(ctx context.Context) (*report.Report, error) {
	p.logger.Info("Starting analysis session")

	unified, err := p.BuildUnifiedDataset(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rpt, err := p.assembler.Build(unified)
	if err != nil {
		return nil, fmt.Errorf("report assembly failed: %w", err)
	}
	p.metrics.Record("report", unified.Len(), time.Since(start))

	p.logger.Info("Analysis session completed",
		zap.String("reportID", rpt.ID),
		zap.Duration("duration", p.metrics.TotalDuration()),
		zap.String("stages", p.metrics.Summary()))

	return rpt, nil
}

// BuildUnifiedDataset loads the three sources, reindexes them and
// builds the unified table without running any query.
func (p *Pipeline) BuildUnifiedDataset(ctx context.Context) (*model.Table, error) {
	officeA, officeB, hr, err := p.loadSources(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	keyedA, err := p.reindexer.ReindexOffice(officeA, dataset.OfficeAPrefix)
	if err != nil {
		return nil, fmt.Errorf("reindex of %s failed: %w", officeA.Name(), err)
	}
	keyedB, err := p.reindexer.ReindexOffice(officeB, dataset.OfficeBPrefix)
	if err != nil {
		return nil, fmt.Errorf("reindex of %s failed: %w", officeB.Name(), err)
	}
	keyedHR, err := p.reindexer.ReindexHR(hr)
	if err != nil {
		return nil, fmt.Errorf("reindex of %s failed: %w", hr.Name(), err)
	}
	p.metrics.Record("reindex", keyedA.Len()+keyedB.Len()+keyedHR.Len(), time.Since(start))

	start = time.Now()
	unified, err := p.unifier.Unify(keyedA, keyedB, keyedHR)
	if err != nil {
		return nil, fmt.Errorf("unification failed: %w", err)
	}
	p.metrics.Record("unify", unified.Len(), time.Since(start))

	if err := dataset.Validate(unified); err != nil {
		return nil, fmt.Errorf("unified dataset rejected: %w", err)
	}

	return unified, nil
}

// loadSources retrieves the three source tables in load order.
func (p *Pipeline) loadSources(ctx context.Context) (officeA, officeB, hr *model.Table, err error) {
	start := time.Now()
	tables := make(map[string]*model.Table, 3)
	rows := 0
	for _, name := range source.Names() {
		table, loadErr := p.loader.Load(ctx, name)
		if loadErr != nil {
			return nil, nil, nil, fmt.Errorf("failed to load source %s: %w", name, loadErr)
		}
		tables[name] = table
		rows += table.Len()
	}
	p.metrics.Record("load", rows, time.Since(start))

	return tables[source.OfficeA], tables[source.OfficeB], tables[source.HR], nil
}

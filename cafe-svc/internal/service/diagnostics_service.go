package service

import (
	"context"
	"fmt"

	"brew-haven/cafe-svc/internal/domain"
	"brew-haven/logging"
)

type DiagnosticsService struct {
	db             DatabaseProber
	cache          CacheProber
	databaseURLSet bool
}

// NewDiagnosticsService takes a nil cache when caching is disabled.
func NewDiagnosticsService(db DatabaseProber, cache CacheProber, databaseURLSet bool) *DiagnosticsService {
	return &DiagnosticsService{db: db, cache: cache, databaseURLSet: databaseURLSet}
}

func (s *DiagnosticsService) Report(ctx context.Context) domain.DiagnosticReport {
	report := domain.NewDiagnosticReport()
	s.probeDatabase(ctx, &report)
	report.Cache = s.probeCache(ctx)
	return report
}

func (s *DiagnosticsService) probeDatabase(ctx context.Context, report *domain.DiagnosticReport) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error("database probe panicked", "panic", r)
			report.Database = domain.DatabaseProbeFailure + domain.Truncate(fmt.Sprint(r), domain.MaxReportedErrorLength)
		}
	}()

	if s.db == nil || !s.db.Available() {
		report.Database = domain.DatabaseNotInitialized
		return
	}

	report.Database = domain.DatabaseAvailable
	report.DatabaseURL = domain.SetFlag(s.databaseURLSet)
	if name := s.db.Name(); name != "" {
		report.DatabaseName = &name
	} else {
		report.DatabaseName = domain.SetFlag(false)
	}
	report.ConnectionStatus = domain.StatusConnected

	names, err := s.db.ListCollectionNames(ctx)
	if err != nil {
		report.Database = domain.DatabaseErrorPrefix + domain.Truncate(err.Error(), domain.MaxReportedErrorLength)
		return
	}

	if len(names) > domain.MaxReportedCollections {
		names = names[:domain.MaxReportedCollections]
	}
	report.Collections = append([]string{}, names...)
	report.Database = domain.DatabaseWorking
}

func (s *DiagnosticsService) probeCache(ctx context.Context) string {
	if s.cache == nil {
		return domain.CacheDisabled
	}
	if err := s.cache.Ping(ctx); err != nil {
		return domain.CacheErrorPrefix + domain.Truncate(err.Error(), domain.MaxReportedErrorLength)
	}
	return domain.CacheConnected
}

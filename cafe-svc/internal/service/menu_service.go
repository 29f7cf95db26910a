package service

import (
	"context"

	"brew-haven/cafe-svc/internal/domain"
	"brew-haven/cafe-svc/internal/storage"
	"brew-haven/logging"
)

type MenuService struct {
	repository DocumentRepository
	cache      MenuCache
}

func NewMenuService(repository DocumentRepository, cache MenuCache) *MenuService {
	return &MenuService{repository: repository, cache: cache}
}

// List never fails. Cached items win, then the menu collection, then the
// built-in fallback menu.
func (s *MenuService) List(ctx context.Context) []domain.MenuItem {
	items, source := s.load(ctx)
	logging.FromContext(ctx).Debug("menu served", "source", source, "items", len(items))
	return items
}

func (s *MenuService) load(ctx context.Context) ([]domain.MenuItem, domain.MenuSource) {
	logger := logging.FromContext(ctx)

	if s.cache != nil {
		items, ok, err := s.cache.GetMenu(ctx)
		if err != nil {
			logger.Warn("menu cache read failed", "error", err)
		} else if ok && len(items) > 0 {
			return items, domain.MenuFromCache
		}
	}

	items, err := s.fromDatabase(ctx)
	if err != nil {
		logger.Warn("menu read failed, serving fallback", "error", err)
		return domain.FallbackMenu(), domain.MenuFromFallback
	}
	if len(items) == 0 {
		return domain.FallbackMenu(), domain.MenuFromFallback
	}

	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, items); err != nil {
			logger.Warn("menu cache write failed", "error", err)
		}
	}
	return items, domain.MenuFromDatabase
}

// fromDatabase fails as a whole if any stored document is not a valid item.
func (s *MenuService) fromDatabase(ctx context.Context) ([]domain.MenuItem, error) {
	docs, err := s.repository.GetDocuments(ctx, domain.MenuItemCollection)
	if err != nil {
		return nil, err
	}

	items := make([]domain.MenuItem, 0, len(docs))
	for _, doc := range docs {
		var item domain.MenuItem
		if err := storage.DecodeDocument(doc, &item); err != nil {
			return nil, err
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

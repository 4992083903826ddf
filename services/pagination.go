package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/store"
)

// LoadMorePageSize is the "load more" batch on category pages.
const LoadMorePageSize = 12

// ErrCursorStale marks a cursor whose product was deleted between pages.
// Callers restart from the first page; they never silently skip ahead or
// treat the gap as end-of-data.
var ErrCursorStale = errors.New("pagination cursor is stale")

// ResolvePage returns the next bounded page of a category, ordered by price
// descending (id ascending on ties). The cursor is the id of the last product
// the caller saw; it is resolved to its concrete record first so the page
// resumes from an ordering position, not a numeric offset.
//
// nextCursor is the last item's id when a full page came back, "" otherwise.
// A full page does not guarantee more data exists — callers confirm by
// fetching once more and treating an empty result as the true end.
//
// Cursor pages hit the store directly: each cursor position is request-local
// state, so memoizing them would multiply entries without reuse.
func (s *CatalogService) ResolvePage(ctx context.Context, categoryID uuid.UUID, cursor string, pageSize int) ([]models.Product, string, error) {
	if pageSize <= 0 {
		pageSize = LoadMorePageSize
	}

	var after *models.Product
	if cursor != "" {
		cursorID, err := uuid.Parse(cursor)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %q", ErrCursorStale, cursor)
		}
		after, err = s.store.ProductByID(ctx, cursorID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, "", fmt.Errorf("%w: product %s deleted", ErrCursorStale, cursor)
			}
			return nil, "", err
		}
	}

	items, err := s.store.ProductPage(ctx, categoryID, after, pageSize)
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(items) == pageSize {
		nextCursor = items[len(items)-1].ID.String()
	}
	return items, nextCursor, nil
}

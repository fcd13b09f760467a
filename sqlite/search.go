package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	limitless "github.com/2mnml/limitlesstcg-search"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ limitless.SearchService = (*SearchService)(nil)

// SearchService implements limitless.SearchService using SQLite.
type SearchService struct {
	db *DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db}
}

// CreateSearch persists a completed search together with its matched decks
// in a single transaction. Deck positions record the order they were
// gathered in.
func (s *SearchService) CreateSearch(ctx context.Context, search *limitless.Search, decks []*limitless.Deck) error {
	if err := search.Validate(); err != nil {
		return err
	}
	for _, deck := range decks {
		if err := deck.Validate(); err != nil {
			return err
		}
	}

	search.ID = uuid.New().String()
	search.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO searches (id, card, tournaments, decks, matches, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, search.ID, search.Card, search.Tournaments, search.Decks, search.Matches,
		search.Elapsed.Milliseconds(), search.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, deck := range decks {
		deck.ID = uuid.New().String()
		deck.SearchID = search.ID

		_, err = tx.ExecContext(ctx, `
			INSERT INTO decks (id, search_id, url, player, archetype, points, wins, losses, ties, dropped, content_hash, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, deck.ID, deck.SearchID, deck.URL, deck.Player, deck.Archetype,
			deck.Points, deck.Wins, deck.Losses, deck.Ties, boolToInt(deck.Dropped),
			deck.ContentHash, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindSearchByID retrieves a search by ID.
func (s *SearchService) FindSearchByID(ctx context.Context, id string) (*limitless.Search, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, card, tournaments, decks, matches, elapsed_ms, created_at
		FROM searches
		WHERE id = ?
	`, id)

	search, err := scanSearch(row.Scan)
	if err == sql.ErrNoRows {
		return nil, limitless.Errorf(limitless.ENOTFOUND, "search not found")
	}
	if err != nil {
		return nil, err
	}
	return search, nil
}

// FindSearches retrieves searches matching the filter, newest first.
func (s *SearchService) FindSearches(ctx context.Context, filter limitless.SearchFilter) ([]*limitless.Search, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, card, tournaments, decks, matches, elapsed_ms, created_at FROM searches WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Card != nil {
		query.WriteString(" AND card = ?")
		args = append(args, *filter.Card)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []*limitless.Search
	for rows.Next() {
		search, err := scanSearch(rows.Scan)
		if err != nil {
			return nil, err
		}
		searches = append(searches, search)
	}

	return searches, rows.Err()
}

// FindDecksBySearchID retrieves the matched decks of a search in recorded
// order.
func (s *SearchService) FindDecksBySearchID(ctx context.Context, searchID string) ([]*limitless.Deck, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, search_id, url, player, archetype, points, wins, losses, ties, dropped, content_hash
		FROM decks
		WHERE search_id = ?
		ORDER BY position ASC
	`, searchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decks []*limitless.Deck
	for rows.Next() {
		var deck limitless.Deck
		var dropped int

		if err := rows.Scan(&deck.ID, &deck.SearchID, &deck.URL, &deck.Player, &deck.Archetype,
			&deck.Points, &deck.Wins, &deck.Losses, &deck.Ties, &dropped, &deck.ContentHash); err != nil {
			return nil, err
		}
		deck.Dropped = dropped != 0

		decks = append(decks, &deck)
	}

	return decks, rows.Err()
}

// DeleteSearch permanently removes a search. Its decks cascade.
func (s *SearchService) DeleteSearch(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM searches WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return limitless.Errorf(limitless.ENOTFOUND, "search not found")
	}

	return nil
}

// scanSearch reads one searches row through the given scan function.
func scanSearch(scan func(dest ...any) error) (*limitless.Search, error) {
	var search limitless.Search
	var elapsedMS int64
	var createdAt string

	if err := scan(&search.ID, &search.Card, &search.Tournaments, &search.Decks,
		&search.Matches, &elapsedMS, &createdAt); err != nil {
		return nil, err
	}

	search.Elapsed = time.Duration(elapsedMS) * time.Millisecond

	var err error
	search.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &search, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

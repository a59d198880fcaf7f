package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/mvieira/lexiflash/internal/logger"
	"github.com/mvieira/lexiflash/internal/models"
	"github.com/mvieira/lexiflash/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var cardColumns = []string{
	"id", "deck_id", "card_type", "front", "back", "cloze_text",
	"extra", "notes", "source", "source_id",
	"interval_days", "next_review_at", "times_reviewed", "times_correct",
	"created_at", "updated_at",
}

type flashcardRepository struct {
	db *sql.DB
}

// NewFlashcardRepository creates a new FlashcardRepository implementation
func NewFlashcardRepository(db *sql.DB) repository.FlashcardRepository {
	return &flashcardRepository{db: db}
}

type cardScanner interface {
	Scan(dest ...any) error
}

func scanCard(row cardScanner) (models.Flashcard, error) {
	var rec models.CardRecord
	err := row.Scan(
		&rec.ID, &rec.DeckID, &rec.CardType, &rec.Front, &rec.Back, &rec.ClozeText,
		&rec.Extra, &rec.Notes, &rec.Source, &rec.SourceID,
		&rec.IntervalDays, &rec.NextReviewAt, &rec.TimesReviewed, &rec.TimesCorrect,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rec.ToFlashcard()
}

func (r *flashcardRepository) Insert(ctx context.Context, card models.Flashcard) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	rec := models.RecordOf(card)
	log.Debug("inserting flashcard: deck_id=%d, card_type=%s", rec.DeckID, rec.CardType)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO flashcards (deck_id, card_type, front, back, cloze_text, extra, notes, source, source_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, rec.DeckID, rec.CardType, rec.Front, rec.Back, rec.ClozeText, rec.Extra, rec.Notes, rec.Source, rec.SourceID)
	if err != nil {
		log.Error("failed to insert flashcard: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get flashcard id: %v", err)
		return 0, err
	}
	log.Debug("flashcard inserted: id=%d", id)
	return id, nil
}

func (r *flashcardRepository) InsertBatch(ctx context.Context, cards []models.Flashcard) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("batch inserting %d flashcards", len(cards))

	var ids []int64
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		stmt, err := t.PrepareContext(ctx, `
INSERT INTO flashcards (deck_id, card_type, front, back, cloze_text, extra, notes, source, source_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, card := range cards {
			rec := models.RecordOf(card)
			res, err := stmt.ExecContext(ctx, rec.DeckID, rec.CardType, rec.Front, rec.Back, rec.ClozeText, rec.Extra, rec.Notes, rec.Source, rec.SourceID)
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to batch insert flashcards: %v", err)
		return nil, err
	}
	log.Debug("batch inserted %d flashcards", len(ids))
	return ids, nil
}

func (r *flashcardRepository) Get(ctx context.Context, id int64) (models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("getting flashcard: id=%d", id)

	query, args, err := sqlBuilder.Select(cardColumns...).
		From("flashcards").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	card, err := scanCard(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("flashcard not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get flashcard: %v", err)
		return nil, err
	}
	return card, nil
}

func (r *flashcardRepository) List(ctx context.Context, filter models.CardFilter) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("listing flashcards: deck_id=%d, card_type=%s, source=%s", filter.DeckID, filter.CardType, filter.Source)

	query := sqlBuilder.Select(cardColumns...).From("flashcards")

	// Dynamic WHERE clauses
	if filter.DeckID != 0 {
		query = query.Where(squirrel.Eq{"deck_id": filter.DeckID})
	}
	if filter.CardType != "" {
		query = query.Where(squirrel.Eq{"card_type": filter.CardType})
	}
	if filter.Source != "" {
		query = query.Where(squirrel.Eq{"source": filter.Source})
	}
	query = query.OrderBy("created_at", "id")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query flashcards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Flashcard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan flashcard row: %v", err)
			return nil, err
		}
		cards = append(cards, card)
	}
	log.Debug("found %d flashcards", len(cards))
	return cards, rows.Err()
}

func (r *flashcardRepository) Update(ctx context.Context, card models.Flashcard) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	rec := models.RecordOf(card)
	log.Debug("updating flashcard: id=%d", rec.ID)

	_, err := r.db.ExecContext(ctx, `
UPDATE flashcards
SET card_type = ?, front = ?, back = ?, cloze_text = ?, extra = ?, notes = ?, source = ?, source_id = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, rec.CardType, rec.Front, rec.Back, rec.ClozeText, rec.Extra, rec.Notes, rec.Source, rec.SourceID, rec.ID)
	if err != nil {
		log.Error("failed to update flashcard: %v", err)
	}
	return err
}

func (r *flashcardRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("deleting flashcard: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM flashcards WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete flashcard: %v", err)
	}
	return err
}

func (r *flashcardRepository) DueFlashcards(ctx context.Context, userID int64, limit int) ([]models.DueCard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("fetching due flashcards: user_id=%d, limit=%d", userID, limit)

	rows, err := r.db.QueryContext(ctx, `
SELECT f.id, f.deck_id, f.card_type, f.front, f.back, f.cloze_text,
       f.extra, f.notes, f.source, f.source_id,
       f.interval_days, f.next_review_at, f.times_reviewed, f.times_correct,
       f.created_at, f.updated_at,
       d.name
FROM flashcards f
JOIN decks d ON d.id = f.deck_id
WHERE d.user_id = ?
AND f.next_review_at <= CURRENT_TIMESTAMP
ORDER BY f.next_review_at
LIMIT ?
`, userID, limit)
	if err != nil {
		log.Error("failed to query due flashcards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var due []models.DueCard
	for rows.Next() {
		var rec models.CardRecord
		var deckName string
		if err := rows.Scan(
			&rec.ID, &rec.DeckID, &rec.CardType, &rec.Front, &rec.Back, &rec.ClozeText,
			&rec.Extra, &rec.Notes, &rec.Source, &rec.SourceID,
			&rec.IntervalDays, &rec.NextReviewAt, &rec.TimesReviewed, &rec.TimesCorrect,
			&rec.CreatedAt, &rec.UpdatedAt,
			&deckName,
		); err != nil {
			log.Error("failed to scan due flashcard row: %v", err)
			return nil, err
		}
		card, err := rec.ToFlashcard()
		if err != nil {
			log.Error("failed to hydrate flashcard %d: %v", rec.ID, err)
			return nil, err
		}
		due = append(due, models.DueCard{Card: card, DeckName: deckName})
	}
	log.Debug("found %d due flashcards", len(due))
	return due, rows.Err()
}

func (r *flashcardRepository) UpdateReviewState(ctx context.Context, id int64, result models.ScheduleResult, correct bool) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("updating review state: id=%d, interval=%d", id, result.IntervalDays)

	_, err := r.db.ExecContext(ctx, `
UPDATE flashcards
SET interval_days = ?,
    next_review_at = ?,
    times_reviewed = times_reviewed + 1,
    times_correct = CASE WHEN ? THEN times_correct + 1 ELSE 0 END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, result.IntervalDays, result.NextReviewDate, correct, id)
	if err != nil {
		log.Error("failed to update review state: %v", err)
	}
	return err
}

func (r *flashcardRepository) InsertReviewHistory(ctx context.Context, flashcardID int64, cardIndex int, quality int, timeSeconds float64) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("inserting review history: flashcard_id=%d, card_index=%d, quality=%d", flashcardID, cardIndex, quality)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO review_history (flashcard_id, card_index, quality, time_seconds)
		VALUES (?, ?, ?, ?)
	`, flashcardID, cardIndex, quality, timeSeconds)
	if err != nil {
		log.Error("failed to insert review history: %v", err)
	}
	return err
}

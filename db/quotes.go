package db

import (
	"database/sql"
	"time"
)

// Quote is one saved message. Username is empty when the author had no
// handle at capture time.
type Quote struct {
	ID          int64
	ChatID      int64
	UserID      int64
	Username    string
	MessageText string
	MessageDate time.Time
}

// Author is a unique quote author within a chat.
type Author struct {
	UserID   int64
	Username string
}

// InsertQuote appends a quote row. Quotes are immutable after this point.
func (s *Store) InsertQuote(chatID, userID int64, username, text string, date time.Time) error {
	_, err := s.conn.Exec(
		"INSERT INTO quotes (chat_id, user_id, username, message_text, message_date) VALUES (?, ?, ?, ?, ?)",
		chatID, userID, nullableString(username), text, date.UTC(),
	)
	return err
}

// RandomQuote returns one uniformly random quote for the chat, or nil when
// the chat has none.
func (s *Store) RandomQuote(chatID int64) (*Quote, error) {
	row := s.conn.QueryRow(
		"SELECT id, chat_id, user_id, username, message_text, message_date FROM quotes WHERE chat_id = ? ORDER BY RANDOM() LIMIT 1",
		chatID,
	)

	var q Quote
	var username sql.NullString
	err := row.Scan(&q.ID, &q.ChatID, &q.UserID, &username, &q.MessageText, &q.MessageDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	q.Username = username.String
	q.MessageDate = q.MessageDate.UTC()
	return &q, nil
}

// DistinctQuoteAuthors returns every user with at least one quote in the chat.
func (s *Store) DistinctQuoteAuthors(chatID int64) ([]Author, error) {
	rows, err := s.conn.Query(
		"SELECT DISTINCT user_id, username FROM quotes WHERE chat_id = ?",
		chatID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []Author
	for rows.Next() {
		var a Author
		var username sql.NullString
		if err := rows.Scan(&a.UserID, &username); err != nil {
			return nil, err
		}
		a.Username = username.String
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

// CountQuotes returns how many quotes the chat has.
func (s *Store) CountQuotes(chatID int64) (int64, error) {
	var n int64
	err := s.conn.QueryRow("SELECT COUNT(*) FROM quotes WHERE chat_id = ?", chatID).Scan(&n)
	return n, err
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

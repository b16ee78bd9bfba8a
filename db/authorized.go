package db

import "database/sql"

// IsChatAuthorized reports whether the chat may use the bot. The lookup is
// fail-closed: a query error answers "not authorized" instead of
// propagating.
func (s *Store) IsChatAuthorized(chatID int64) bool {
	var one int
	err := s.conn.QueryRow("SELECT 1 FROM authorized_chats WHERE chat_id = ?", chatID).Scan(&one)
	if err == sql.ErrNoRows {
		return authorizedFromLookup(false, nil)
	}
	return authorizedFromLookup(err == nil, err)
}

// authorizedFromLookup maps an authorization lookup outcome to a decision.
// Both a missing row and a failed lookup mean "not authorized".
func authorizedFromLookup(found bool, err error) bool {
	if err != nil {
		return false
	}
	return found
}

// AuthorizeChat adds the chat to the authorized set. The chat key is the
// primary key, so callers pre-check IsChatAuthorized to avoid a duplicate
// insert error.
func (s *Store) AuthorizeChat(chatID int64) error {
	_, err := s.conn.Exec("INSERT INTO authorized_chats (chat_id) VALUES (?)", chatID)
	return err
}

// DeauthorizeChat removes the chat from the authorized set.
func (s *Store) DeauthorizeChat(chatID int64) error {
	_, err := s.conn.Exec("DELETE FROM authorized_chats WHERE chat_id = ?", chatID)
	return err
}

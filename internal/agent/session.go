// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agent exposes the conversions as tools behind a
// natural-language chat loop, with conversation history persisted
// across runs.
package agent

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS messages (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	role       TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, id);
`

// Message is one turn of a stored conversation.
type Message struct {
	Role    string
	Content string
}

// Store persists conversation history in SQLite so a session can be
// resumed by id.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the session database at path.
// Use ":memory:" for an ephemeral store.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening session db %s: %w", path, err)
	}
	if _, err := db.Exec(sessionSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing session db: %w", err)
	}
	return &Store{db: db}, nil
}

// Append records one message at the end of a session.
func (s *Store) Append(sessionID, role, content string) error {
	_, err := s.db.Exec(
		`INSERT INTO messages (session_id, role, content) VALUES (?, ?, ?)`,
		sessionID, role, content)
	if err != nil {
		return fmt.Errorf("appending message: %w", err)
	}
	return nil
}

// History returns a session's messages in insertion order.
func (s *Store) History(sessionID string) ([]Message, error) {
	rows, err := s.db.Query(
		`SELECT role, content FROM messages WHERE session_id = ? ORDER BY id`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.Role, &m.Content); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// Clear removes a session's messages.
func (s *Store) Clear(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM messages WHERE session_id = ?`, sessionID)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

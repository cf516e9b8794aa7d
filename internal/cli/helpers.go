package cli

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sakamichi-tools/penlight/internal/config"
	"github.com/sakamichi-tools/penlight/internal/storage"
)

// loadConfig resolves the config from the --config flag or the default
// location, creating the default file when missing.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.LoadOrCreateAt(globals.Config)
	}
	return config.LoadOrCreate()
}

// openDefaultStore opens the configured database, runs migrations, and
// returns a ready-to-use store with its config.
func openDefaultStore(globals *GlobalFlags) (*storage.SQLiteStore, *sql.DB, *config.Config, error) {
	cfg, err := loadConfig(globals)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		return nil, nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, nil, nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}

	runner := storage.NewMigrationRunner(db)
	if err := runner.Run(); err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	store, err := storage.NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("init store: %w", err)
	}

	return store, db, cfg, nil
}

// nowDateISO returns today's date in the local timezone as YYYY-MM-DD.
func nowDateISO() string {
	return time.Now().Format("2006-01-02")
}

// parseTags splits whitespace-separated tags, dropping empties.
func parseTags(s string) []string {
	return strings.Fields(s)
}

// copyText writes text to the system clipboard. Callers print the text as a
// manual-copy fallback when this fails (headless sessions, no clipboard).
func copyText(text string) error {
	return clipboard.WriteAll(text)
}

// confirm asks a yes/no question on stdin and reports whether the user
// answered yes.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// confirmTyped requires the user to type an exact word, for destructive
// operations.
func confirmTyped(word string) error {
	fmt.Printf("Type %q to confirm: ", word)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return fmt.Errorf("aborted: no input received")
	}
	if strings.TrimSpace(scanner.Text()) != word {
		return fmt.Errorf("aborted: confirmation text did not match")
	}
	return nil
}

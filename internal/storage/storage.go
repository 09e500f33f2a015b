package storage

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/notnil/chess"

	"github.com/amiit04/ChessBotAI/internal/engine"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keySavedGame   = "saved_game"
)

// UserPreferences stores user settings between sessions.
type UserPreferences struct {
	Difficulty  engine.Difficulty `json:"difficulty"`
	PlayerColor chess.Color       `json:"player_color"`
	ShowHints   bool              `json:"show_hints"`
	LastPlayed  time.Time         `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Difficulty:  engine.Medium,
		PlayerColor: chess.White,
		ShowHints:   true,
		LastPlayed:  time.Now(),
	}
}

// GameStats stores game statistics.
type GameStats struct {
	GamesPlayed    int            `json:"games_played"`
	Wins           int            `json:"wins"`
	Losses         int            `json:"losses"`
	Draws          int            `json:"draws"`
	WinsByDiff     map[string]int `json:"wins_by_difficulty"`
	LongestWinStrk int            `json:"longest_win_streak"`
	CurrentStreak  int            `json:"current_streak"`
}

// NewGameStats returns empty game statistics.
func NewGameStats() *GameStats {
	return &GameStats{
		WinsByDiff: make(map[string]int),
	}
}

// WinRate returns the win rate as a percentage (0-100).
func (s *GameStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// GameResult represents the result of a completed game from the
// human player's point of view.
type GameResult struct {
	Won        bool
	Draw       bool
	Difficulty engine.Difficulty
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens the database in the platform data directory.
func Open() (*Storage, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the database in the given directory.
func OpenAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences and stamps the play time.
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults when
// nothing is stored yet.
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves game statistics.
func (s *Storage) SaveStats(stats *GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads game statistics, returning empty stats when nothing
// is stored yet.
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordGame records a completed game and updates statistics.
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++

	switch {
	case result.Draw:
		stats.Draws++
		stats.CurrentStreak = 0
	case result.Won:
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentStreak
		}
		stats.WinsByDiff[strings.ToLower(result.Difficulty.String())]++
	default:
		stats.Losses++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}

// SaveGame stores the in-progress game as PGN so it can be resumed
// after a restart.
func (s *Storage) SaveGame(game *chess.Game) error {
	data := []byte(game.String())
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySavedGame), data)
	})
}

// LoadGame returns the autosaved game, or nil when none is stored.
func (s *Storage) LoadGame() (*chess.Game, error) {
	var pgn string

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySavedGame))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			pgn = string(val)
			return nil
		})
	})
	if err != nil || pgn == "" {
		return nil, err
	}

	opt, err := chess.PGN(strings.NewReader(pgn))
	if err != nil {
		return nil, err
	}
	return chess.NewGame(opt), nil
}

// ClearSavedGame removes the autosaved game once it has finished.
func (s *Storage) ClearSavedGame() error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(keySavedGame))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}

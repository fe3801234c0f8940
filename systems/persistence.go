package systems

import (
	"encoding/json"
	"log"
	"sort"

	cfg "github.com/automoto/skystrike/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Difficulty int  `json:"difficulty"`
	Fullscreen bool `json:"fullscreen"`
}

// HighScore is one entry on the local score table.
type HighScore struct {
	Score      int    `json:"score"`
	Difficulty string `json:"difficulty"`
	Won        bool   `json:"won"`
}

const highScoreLimit = 10

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "skystrike",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// LoadHighScores returns the stored table, best first. A missing or
// corrupt table reads as empty.
func LoadHighScores() []HighScore {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("highscores")
	if err != nil || len(data) == 0 {
		return nil
	}

	var scores []HighScore
	if err := json.Unmarshal(data, &scores); err != nil {
		log.Printf("Warning: Could not parse high scores: %v", err)
		return nil
	}
	return scores
}

// RecordHighScore merges a finished run into the table and persists it.
// Returns the entry's rank, or -1 when it did not place.
func RecordHighScore(score int, difficulty cfg.Difficulty, won bool) int {
	scores := LoadHighScores()
	scores = append(scores, HighScore{
		Score:      score,
		Difficulty: difficulty.String(),
		Won:        won,
	})
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > highScoreLimit {
		scores = scores[:highScoreLimit]
	}

	rank := -1
	for i, s := range scores {
		if s.Score == score && s.Difficulty == difficulty.String() && s.Won == won {
			rank = i
			break
		}
	}

	if gdataInitialized && gdataManager != nil {
		data, err := json.Marshal(scores)
		if err == nil {
			if err := gdataManager.SaveItem("highscores", data); err != nil {
				log.Printf("Warning: Could not save high scores: %v", err)
			}
		}
	}
	return rank
}

package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	ShortName      string         `db:"short_name"`
	PrimaryColor   sql.NullString `db:"primary_color"`
	SecondaryColor sql.NullString `db:"secondary_color"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type venueTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	City      string    `db:"city"`
	Country   string    `db:"country"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type playerTableModel struct {
	ID           string         `db:"id"`
	TeamID       string         `db:"team_id"`
	Name         string         `db:"name"`
	Role         string         `db:"role"`
	BattingStyle sql.NullString `db:"batting_style"`
	BowlingStyle sql.NullString `db:"bowling_style"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type matchTableModel struct {
	ID          string    `db:"id"`
	Team1ID     string    `db:"team1_id"`
	Team2ID     string    `db:"team2_id"`
	VenueID     string    `db:"venue_id"`
	MatchDate   time.Time `db:"match_date"`
	MatchStatus string    `db:"match_status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type predictionTableModel struct {
	ID                  string    `db:"id"`
	MatchID             string    `db:"match_id"`
	Team1WinProbability int       `db:"team1_win_probability"`
	Team2WinProbability int       `db:"team2_win_probability"`
	TieProbability      int       `db:"tie_probability"`
	InsightsJSON        string    `db:"insights_json"`
	PitchReportJSON     string    `db:"pitch_report_json"`
	GeneratedAt         time.Time `db:"generated_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

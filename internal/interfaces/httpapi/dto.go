package httpapi

import (
	"time"

	"github.com/pitchside/matchsight/internal/domain/match"
	"github.com/pitchside/matchsight/internal/domain/player"
	"github.com/pitchside/matchsight/internal/domain/prediction"
	"github.com/pitchside/matchsight/internal/domain/team"
	"github.com/pitchside/matchsight/internal/domain/venue"
	"github.com/pitchside/matchsight/internal/usecase"
)

type resolveVenueRequestDTO struct {
	VenueName string `json:"venueName" validate:"required"`
}

type matchRequestDTO struct {
	Team1ID   string `json:"team1Id" validate:"required"`
	Team2ID   string `json:"team2Id" validate:"required"`
	VenueName string `json:"venueName" validate:"required"`
	MatchDate string `json:"matchDate"`
	Status    string `json:"status"`
}

type predictionRequestDTO struct {
	MatchID   string `json:"matchId"`
	Team1ID   string `json:"team1Id"`
	Team2ID   string `json:"team2Id"`
	VenueName string `json:"venueName"`
	MatchDate string `json:"matchDate"`
	Status    string `json:"status"`
}

type teamDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ShortName      string `json:"shortName"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
}

type venueDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type venueResolutionDTO struct {
	Venue     venueDTO `json:"venue"`
	Tier      string   `json:"tier"`
	IsNew     bool     `json:"isNew"`
	Persisted bool     `json:"persisted"`
}

type playerDTO struct {
	ID           string `json:"id"`
	TeamID       string `json:"teamId"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	BattingStyle string `json:"battingStyle,omitempty"`
	BowlingStyle string `json:"bowlingStyle,omitempty"`
}

type matchDTO struct {
	ID        string             `json:"id"`
	Team1ID   string             `json:"team1Id"`
	Team2ID   string             `json:"team2Id"`
	VenueID   string             `json:"venueId"`
	MatchDate time.Time          `json:"matchDate"`
	Status    string             `json:"status"`
	IsNew     bool               `json:"isNew"`
	Persisted bool               `json:"persisted"`
	Venue     venueResolutionDTO `json:"venue"`
}

type predictionDTO struct {
	ID                  string    `json:"id,omitempty"`
	MatchID             string    `json:"matchId"`
	Team1WinProbability int       `json:"team1WinProbability"`
	Team2WinProbability int       `json:"team2WinProbability"`
	TieProbability      int       `json:"tieProbability"`
	Insights            []string  `json:"insights"`
	PitchReport         []string  `json:"pitchReport"`
	GeneratedAt         time.Time `json:"generatedAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// fetchEnvelopeDTO mirrors usecase.FetchResult on the wire so clients can
// tell authoritative data from degraded data.
type fetchEnvelopeDTO[T any] struct {
	Success   bool      `json:"success"`
	Data      T         `json:"data"`
	Source    string    `json:"source"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type analysisDTO struct {
	Match      matchDTO                        `json:"match"`
	Teams      []teamDTO                       `json:"teams"`
	Players    fetchEnvelopeDTO[[]playerDTO]   `json:"players"`
	Prediction fetchEnvelopeDTO[predictionDTO] `json:"prediction"`
	Touched    map[usecase.TouchKind][]string  `json:"touched,omitempty"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:             item.ID,
		Name:           item.Name,
		ShortName:      item.Short,
		PrimaryColor:   item.PrimaryColor,
		SecondaryColor: item.SecondaryColor,
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

func venueToDTO(item venue.Venue) venueDTO {
	return venueDTO{ID: item.ID, Name: item.Name, City: item.City, Country: item.Country}
}

func venuesToDTO(items []venue.Venue) []venueDTO {
	out := make([]venueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, venueToDTO(item))
	}
	return out
}

func venueResolutionToDTO(item usecase.VenueResolution) venueResolutionDTO {
	return venueResolutionDTO{
		Venue:     venueToDTO(item.Venue),
		Tier:      item.Tier,
		IsNew:     item.IsNew,
		Persisted: item.Persisted,
	}
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:           item.ID,
		TeamID:       item.TeamID,
		Name:         item.Name,
		Role:         item.Role,
		BattingStyle: item.BattingStyle,
		BowlingStyle: item.BowlingStyle,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func matchRecordToDTO(record usecase.MatchRecord) matchDTO {
	return matchDTO{
		ID:        record.Match.ID,
		Team1ID:   record.Match.Team1ID,
		Team2ID:   record.Match.Team2ID,
		VenueID:   record.Match.VenueID,
		MatchDate: record.Match.MatchDate,
		Status:    record.Match.Status,
		IsNew:     record.IsNew,
		Persisted: record.Persisted,
		Venue:     venueResolutionToDTO(record.Venue),
	}
}

func matchToDTO(item match.Match) matchDTO {
	return matchDTO{
		ID:        item.ID,
		Team1ID:   item.Team1ID,
		Team2ID:   item.Team2ID,
		VenueID:   item.VenueID,
		MatchDate: item.MatchDate,
		Status:    item.Status,
		Persisted: true,
	}
}

func predictionToDTO(item prediction.Prediction) predictionDTO {
	return predictionDTO{
		ID:                  item.ID,
		MatchID:             item.MatchID,
		Team1WinProbability: item.Team1WinProbability,
		Team2WinProbability: item.Team2WinProbability,
		TieProbability:      item.TieProbability,
		Insights:            item.Insights,
		PitchReport:         item.PitchReport,
		GeneratedAt:         item.GeneratedAt,
		UpdatedAt:           item.UpdatedAt,
	}
}

func envelopeToDTO[T, U any](result usecase.FetchResult[T], mapData func(T) U) fetchEnvelopeDTO[U] {
	return fetchEnvelopeDTO[U]{
		Success:   result.Success,
		Data:      mapData(result.Data),
		Source:    string(result.Source),
		Message:   result.Message,
		Timestamp: result.Timestamp,
	}
}

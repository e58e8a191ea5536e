package memory

import (
	"github.com/pitchside/matchsight/internal/domain/player"
	"github.com/pitchside/matchsight/internal/domain/team"
	"github.com/pitchside/matchsight/internal/domain/venue"
)

// Static reference data: served as-is when the store is unconfigured, and
// used to backfill an empty database on first run.

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "csk", Name: "Chennai Super Kings", Short: "CSK", PrimaryColor: "#FDB913", SecondaryColor: "#005DB7"},
		{ID: "mi", Name: "Mumbai Indians", Short: "MI", PrimaryColor: "#004BA0", SecondaryColor: "#D1AB3E"},
		{ID: "rcb", Name: "Royal Challengers Bengaluru", Short: "RCB", PrimaryColor: "#EC1C24", SecondaryColor: "#2B2A29"},
		{ID: "kkr", Name: "Kolkata Knight Riders", Short: "KKR", PrimaryColor: "#3A225D", SecondaryColor: "#B3A123"},
		{ID: "srh", Name: "Sunrisers Hyderabad", Short: "SRH", PrimaryColor: "#F7A721", SecondaryColor: "#E95E0B"},
		{ID: "gt", Name: "Gujarat Titans", Short: "GT", PrimaryColor: "#1B2133", SecondaryColor: "#B9A159"},
	}
}

func SeedVenues() []venue.Venue {
	return []venue.Venue{
		{ID: "wankhede", Name: "Wankhede Stadium", City: "Mumbai", Country: "India"},
		{ID: "chepauk", Name: "M. A. Chidambaram Stadium", City: "Chennai", Country: "India"},
		{ID: "chinnaswamy", Name: "M. Chinnaswamy Stadium", City: "Bengaluru", Country: "India"},
		{ID: "eden-gardens", Name: "Eden Gardens", City: "Kolkata", Country: "India"},
		{ID: "uppal", Name: "Rajiv Gandhi International Stadium", City: "Hyderabad", Country: "India"},
		{ID: "motera", Name: "Narendra Modi Stadium", City: "Ahmedabad", Country: "India"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "csk-bat-01", TeamID: "csk", Name: "Ruturaj Gaikwad", Role: player.RoleBatter, BattingStyle: "right-hand"},
		{ID: "csk-wk-01", TeamID: "csk", Name: "MS Dhoni", Role: player.RoleWicketKeeper, BattingStyle: "right-hand"},
		{ID: "csk-ar-01", TeamID: "csk", Name: "Ravindra Jadeja", Role: player.RoleAllRounder, BattingStyle: "left-hand", BowlingStyle: "left-arm orthodox"},
		{ID: "csk-bowl-01", TeamID: "csk", Name: "Matheesha Pathirana", Role: player.RoleBowler, BowlingStyle: "right-arm fast"},
		{ID: "mi-bat-01", TeamID: "mi", Name: "Rohit Sharma", Role: player.RoleBatter, BattingStyle: "right-hand"},
		{ID: "mi-bat-02", TeamID: "mi", Name: "Suryakumar Yadav", Role: player.RoleBatter, BattingStyle: "right-hand"},
		{ID: "mi-ar-01", TeamID: "mi", Name: "Hardik Pandya", Role: player.RoleAllRounder, BattingStyle: "right-hand", BowlingStyle: "right-arm medium-fast"},
		{ID: "mi-bowl-01", TeamID: "mi", Name: "Jasprit Bumrah", Role: player.RoleBowler, BowlingStyle: "right-arm fast"},
		{ID: "rcb-bat-01", TeamID: "rcb", Name: "Virat Kohli", Role: player.RoleBatter, BattingStyle: "right-hand"},
		{ID: "rcb-bat-02", TeamID: "rcb", Name: "Rajat Patidar", Role: player.RoleBatter, BattingStyle: "right-hand"},
		{ID: "rcb-bowl-01", TeamID: "rcb", Name: "Josh Hazlewood", Role: player.RoleBowler, BowlingStyle: "right-arm fast-medium"},
		{ID: "kkr-bat-01", TeamID: "kkr", Name: "Shreyas Iyer", Role: player.RoleBatter, BattingStyle: "right-hand"},
		{ID: "kkr-ar-01", TeamID: "kkr", Name: "Andre Russell", Role: player.RoleAllRounder, BattingStyle: "right-hand", BowlingStyle: "right-arm fast"},
		{ID: "kkr-bowl-01", TeamID: "kkr", Name: "Varun Chakravarthy", Role: player.RoleBowler, BowlingStyle: "right-arm legbreak"},
		{ID: "srh-bat-01", TeamID: "srh", Name: "Travis Head", Role: player.RoleBatter, BattingStyle: "left-hand"},
		{ID: "srh-wk-01", TeamID: "srh", Name: "Heinrich Klaasen", Role: player.RoleWicketKeeper, BattingStyle: "right-hand"},
		{ID: "srh-bowl-01", TeamID: "srh", Name: "Pat Cummins", Role: player.RoleBowler, BowlingStyle: "right-arm fast"},
		{ID: "gt-bat-01", TeamID: "gt", Name: "Shubman Gill", Role: player.RoleBatter, BattingStyle: "right-hand"},
		{ID: "gt-ar-01", TeamID: "gt", Name: "Rashid Khan", Role: player.RoleAllRounder, BattingStyle: "right-hand", BowlingStyle: "right-arm legbreak"},
		{ID: "gt-bowl-01", TeamID: "gt", Name: "Mohammed Siraj", Role: player.RoleBowler, BowlingStyle: "right-arm fast"},
	}
}

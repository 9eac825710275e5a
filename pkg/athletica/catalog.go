// Package athletica holds the literal endpoint catalog of the AthleticaOS
// rugby backend and assembles it into a Postman collection.
package athletica

import (
	"github.com/athleticaos/pmgen/pkg/postman"
)

// DefaultName is the display name of the generated collection.
const DefaultName = "AthleticaOS Rugby – FULL API (Updated RBAC Version)"

// DefaultOutput is where the collection is written when no path is configured.
const DefaultOutput = "docs/api/postman/full/athleticaos_postman_full.json"

// Folder names in output order.
const (
	FolderHealthcheck   = "Healthcheck"
	FolderAuth          = "Auth"
	FolderUsers         = "Users"
	FolderOrganisations = "Organisations"
	FolderClubs         = "Clubs"
	FolderTeams         = "Teams"
	FolderPlayers       = "Players"
	FolderTournaments   = "Tournaments"
	FolderMatches       = "Matches"
	FolderMatchEvents   = "Match Events"
	FolderBranding      = "Branding"
	FolderCalendar      = "Calendar"
	FolderFileUploads   = "File Uploads"
	FolderUtility       = "Utility"
)

// FolderOrder lists every top-level folder in the order it is emitted.
var FolderOrder = []string{
	FolderHealthcheck,
	FolderAuth,
	FolderUsers,
	FolderOrganisations,
	FolderClubs,
	FolderTeams,
	FolderPlayers,
	FolderTournaments,
	FolderMatches,
	FolderMatchEvents,
	FolderBranding,
	FolderCalendar,
	FolderFileUploads,
	FolderUtility,
}

// Build assembles the full collection under the default name.
func Build(id string) postman.Collection {
	return BuildNamed(id, DefaultName)
}

// BuildNamed assembles the full collection with a custom display name.
func BuildNamed(id, name string) postman.Collection {
	return postman.NewBuilder(id, name).Add(
		healthcheckFolder(),
		authFolder(),
		usersFolder(),
		organisationsFolder(),
		clubsFolder(),
		teamsFolder(),
		playersFolder(),
		tournamentsFolder(),
		matchesFolder(),
		matchEventsFolder(),
		brandingFolder(),
		// Controllers not covered yet.
		postman.NewFolder(FolderCalendar),
		postman.NewFolder(FolderFileUploads),
		postman.NewFolder(FolderUtility),
	).Build()
}

func get(name, path string) postman.Item {
	return postman.NewItem(name, postman.NewRequest("GET", path, nil, ""))
}

func send(name, method, path string, body any) postman.Item {
	return postman.NewItem(name, postman.NewRequest(method, path, body, ""))
}

func healthcheckFolder() postman.Folder {
	return postman.NewFolder(FolderHealthcheck,
		get("Health Check", "/actuator/health"),
	)
}

func authFolder() postman.Folder {
	// No token exists yet for these two calls.
	login := postman.NewRequest("POST", "/api/v1/auth/login", LoginRequest{
		Email:    "admin@athleticaos.com",
		Password: "password",
	}, "").WithoutHeader(postman.HeaderAuthorization)

	register := postman.NewRequest("POST", "/api/v1/auth/register", RegisterRequest{
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john.doe@example.com",
		Password:       "password123",
		Roles:          []string{"ROLE_USER"},
		OrganisationID: "",
	}, "").WithoutHeader(postman.HeaderAuthorization)

	return postman.NewFolder(FolderAuth,
		postman.NewItem("Login", login, postman.NewTestScript(LoginTestScript()...)),
		postman.NewItem("Register", register),
	)
}

func usersFolder() postman.Folder {
	return postman.NewFolder(FolderUsers,
		get("Get All Users", "/api/v1/users"),
		get("Get User By ID", "/api/v1/users/{{user_id}}"),
		send("Update User", "PUT", "/api/v1/users/{{user_id}}", UserUpdateRequest{
			FirstName:      "John",
			LastName:       "Doe Updated",
			Email:          "john.doe@example.com",
			Phone:          "+1234567890",
			Roles:          []string{"ROLE_USER"},
			OrganisationID: "",
			IsActive:       true,
		}),
	)
}

func organisationsFolder() postman.Folder {
	return postman.NewFolder(FolderOrganisations,
		send("Create Organisation", "POST", "/api/v1/organisations", OrganisationCreateRequest{
			Name:           "New Organisation",
			OrgType:        "UNION",
			ParentOrgID:    nil,
			PrimaryColor:   "#FFFFFF",
			SecondaryColor: "#000000",
			LogoURL:        "http://example.com/logo.png",
		}),
		get("Get All Organisations", "/api/v1/organisations"),
		get("Get Organisation By ID", "/api/v1/organisations/{{org_id}}"),
	)
}

// Clubs are organisations too; they get their own folder for readability.
func clubsFolder() postman.Folder {
	union := "{{union_id}}"
	return postman.NewFolder(FolderClubs,
		send("Create Club", "POST", "/api/v1/organisations", OrganisationCreateRequest{
			Name:           "New Club",
			OrgType:        "CLUB",
			ParentOrgID:    &union,
			PrimaryColor:   "#FF0000",
			SecondaryColor: "#0000FF",
			LogoURL:        "http://example.com/club_logo.png",
		}),
	)
}

func teamsFolder() postman.Folder {
	return postman.NewFolder(FolderTeams,
		send("Create Team", "POST", "/api/v1/teams", TeamCreateRequest{
			OrganisationID: "{{club_id}}",
			Name:           "Team A",
			Category:       "MEN",
			AgeGroup:       "SENIOR",
		}),
		get("Get All Teams", "/api/v1/teams"),
		get("Get Team By ID", "/api/v1/teams/{{team_id}}"),
	)
}

func playersFolder() postman.Folder {
	return postman.NewFolder(FolderPlayers,
		send("Create Player", "POST", "/api/v1/players", PlayerCreateRequest{
			FirstName:    "Player",
			LastName:     "One",
			Gender:       "MALE",
			DOB:          "1990-01-01",
			ICOrPassport: "A1234567",
			Nationality:  "Malaysia",
			Email:        "player@example.com",
			Phone:        "+60123456789",
			Address:      "123 Street",
			DominantHand: "RIGHT",
			DominantLeg:  "RIGHT",
			HeightCm:     180,
			WeightKg:     90,
		}),
		get("Get All Players", "/api/v1/players"),
		get("Get Player By ID", "/api/v1/players/{{player_id}}"),
	)
}

func tournamentsFolder() postman.Folder {
	return postman.NewFolder(FolderTournaments,
		send("Create Tournament", "POST", "/api/v1/tournaments", TournamentCreateRequest{
			OrganiserOrgID: "{{union_id}}",
			Name:           "National Cup",
			Level:          "NATIONAL",
			StartDate:      "2024-01-01",
			EndDate:        "2024-01-10",
			Venue:          "National Stadium",
		}),
		get("Get All Tournaments", "/api/v1/tournaments"),
		get("Get Tournament By ID", "/api/v1/tournaments/{{tournament_id}}"),
	)
}

func matchesFolder() postman.Folder {
	return postman.NewFolder(FolderMatches,
		send("Create Match", "POST", "/api/v1/matches", MatchCreateRequest{
			TournamentID: "{{tournament_id}}",
			HomeTeamID:   "{{home_team_id}}",
			AwayTeamID:   "{{away_team_id}}",
			MatchDate:    "2024-01-05T15:00:00",
			Location:     "Field A",
			Stage:        "GROUP",
		}),
		get("Get All Matches", "/api/v1/matches"),
		get("Get Match By ID", "/api/v1/matches/{{match_id}}"),
	)
}

func matchEventsFolder() postman.Folder {
	return postman.NewFolder(FolderMatchEvents,
		send("Create Match Event", "POST", "/api/v1/matches/events", MatchEventCreateRequest{
			MatchID:   "{{match_id}}",
			EventType: "TRY",
			TeamID:    "{{team_id}}",
			PlayerID:  "{{player_id}}",
			Minute:    15,
			Details:   "Great run",
		}),
	)
}

func brandingFolder() postman.Folder {
	return postman.NewFolder(FolderBranding,
		send("Update Theme", "PUT", "/api/v1/themes", ThemeUpdateRequest{
			OrganisationID: "{{org_id}}",
			PrimaryColor:   "#123456",
			SecondaryColor: "#654321",
			LogoURL:        "http://example.com/new_logo.png",
		}),
		get("Get Theme", "/api/v1/themes/{{org_id}}"),
	)
}

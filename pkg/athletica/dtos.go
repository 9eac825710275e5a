package athletica

// Request bodies sent to the AthleticaOS backend. Field order is the key
// order of the generated example body.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Roles          []string `json:"roles"`
	OrganisationID string   `json:"organisationId"`
}

type UserUpdateRequest struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Roles          []string `json:"roles"`
	OrganisationID string   `json:"organisationId"`
	IsActive       bool     `json:"isActive"`
}

// OrganisationCreateRequest covers unions and clubs; a nil ParentOrgID is sent as null.
type OrganisationCreateRequest struct {
	Name           string  `json:"name"`
	OrgType        string  `json:"orgType"`
	ParentOrgID    *string `json:"parentOrgId"`
	PrimaryColor   string  `json:"primaryColor"`
	SecondaryColor string  `json:"secondaryColor"`
	LogoURL        string  `json:"logoUrl"`
}

type TeamCreateRequest struct {
	OrganisationID string `json:"organisationId"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	AgeGroup       string `json:"ageGroup"`
}

type PlayerCreateRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	DOB          string `json:"dob"`
	ICOrPassport string `json:"icOrPassport"`
	Nationality  string `json:"nationality"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	DominantHand string `json:"dominantHand"`
	DominantLeg  string `json:"dominantLeg"`
	HeightCm     int    `json:"heightCm"`
	WeightKg     int    `json:"weightKg"`
}

type TournamentCreateRequest struct {
	OrganiserOrgID string `json:"organiserOrgId"`
	Name           string `json:"name"`
	Level          string `json:"level"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Venue          string `json:"venue"`
}

type MatchCreateRequest struct {
	TournamentID string `json:"tournamentId"`
	HomeTeamID   string `json:"homeTeamId"`
	AwayTeamID   string `json:"awayTeamId"`
	MatchDate    string `json:"matchDate"`
	Location     string `json:"location"`
	Stage        string `json:"stage"`
}

type MatchEventCreateRequest struct {
	MatchID   string `json:"matchId"`
	EventType string `json:"eventType"`
	TeamID    string `json:"teamId"`
	PlayerID  string `json:"playerId"`
	Minute    int    `json:"minute"`
	Details   string `json:"details"`
}

type ThemeUpdateRequest struct {
	OrganisationID string `json:"organisationId"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	LogoURL        string `json:"logoUrl"`
}

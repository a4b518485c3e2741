package teams

// Error messages for the team handlers
const (
	ErrTeamNotFound     = "Team not found"
	ErrFetchingTeams    = "Failed to fetch teams"
	ErrJuryNotFound     = "Jury not found"
	ErrFetchingJuries   = "Failed to fetch juries"
	ErrJuryNameTaken    = "A jury member with this name already exists"
	ErrCreatingJury     = "Failed to create jury"
)

// UpsertTeamRequest model for creating or updating a team
type UpsertTeamRequest struct {
	Name       string `json:"name"`
	LeaderName string `json:"leader_name"`
	Password   string `json:"password"`
	ThemeColor string `json:"theme_color"`
}

// CreateJuryRequest model for creating a jury account
type CreateJuryRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// PublicTeam is the public projection of a team for the leaders showcase
type PublicTeam struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LeaderName  string `json:"leader_name"`
	ThemeColor  string `json:"theme_color"`
	TotalPoints int    `json:"total_points"`
}

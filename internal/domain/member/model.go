package member

import "fmt"

// Member is one league participant. Identity is immutable; display
// attributes are owned by the profile subsystem and synced in.
type Member struct {
	ID          string
	LeagueID    string
	DisplayName string
	AvatarURL   string
}

func (m Member) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("member id is required")
	}
	if m.LeagueID == "" {
		return fmt.Errorf("member league id is required")
	}
	if m.DisplayName == "" {
		return fmt.Errorf("member display name is required")
	}

	return nil
}

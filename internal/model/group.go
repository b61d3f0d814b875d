package model

// Participant is a person who can pay or owe within a group.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Group is a named collection of participants sharing expenses.
type Group struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Currency     string        `json:"currency"`
	Participants []Participant `json:"participants"`
}

// Participant returns the first participant whose display name equals name.
func (g Group) Participant(name string) (Participant, bool) {
	for _, p := range g.Participants {
		if p.Name == name {
			return p, true
		}
	}
	return Participant{}, false
}

// ParticipantByID returns the participant with the given ID.
func (g Group) ParticipantByID(id string) (Participant, bool) {
	for _, p := range g.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

package bots

// Opponent is a named computer player bound to a strength level.
type Opponent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Level Level  `json:"level"`
}

var opponents = []Opponent{
	{ID: "nong-nob", Name: "Nong Nob", Title: "Beginner", Level: 1},
	{ID: "pro-kao", Name: "Pro Kao", Title: "Intermediate", Level: 2},
	{ID: "master-meow", Name: "Master Meow", Title: "Pro", Level: 3},
	{ID: "thunder-god", Name: "Thunder God", Title: "Champion", Level: 4},
}

// Opponents lists the opponents from weakest to strongest.
func Opponents() []Opponent {
	out := make([]Opponent, len(opponents))
	copy(out, opponents)
	return out
}

func OpponentByID(id string) (Opponent, bool) {
	for _, o := range opponents {
		if o.ID == id {
			return o, true
		}
	}
	return Opponent{}, false
}

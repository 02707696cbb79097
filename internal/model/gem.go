package model

// storage representation of a hidden gem
// the gem repository is the only writer; callers always receive clones
type HiddenGem struct {
	ID            uint32   `json:"id"`
	Name          string   `json:"name"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	GemType       string   `json:"gemType"`
	TimesVisited  int      `json:"timesVisited"`
	UserCreated   string   `json:"userCreated"`
	WebsiteLink   string   `json:"websiteLink"`
	Accessibility []bool   `json:"accessibility"`
	GemImages     []string `json:"gemImages"`
	Reviews       []Review `json:"reviews"`
}

// Clone returns a copy whose slice fields share no memory with the receiver.
func (g HiddenGem) Clone() HiddenGem {
	clone := g
	clone.Accessibility = cloneSlice(g.Accessibility)
	clone.GemImages = cloneSlice(g.GemImages)
	clone.Reviews = cloneSlice(g.Reviews)
	return clone
}

// GemAttributes carries every HiddenGem field except the id, which the
// repository assigns on create.
type GemAttributes struct {
	Name          string   `json:"name"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	GemType       string   `json:"gemType"`
	TimesVisited  int      `json:"timesVisited"`
	UserCreated   string   `json:"userCreated"`
	WebsiteLink   string   `json:"websiteLink"`
	Accessibility []bool   `json:"accessibility"`
	GemImages     []string `json:"gemImages"`
	Reviews       []Review `json:"reviews"`
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

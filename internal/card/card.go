// Package card builds the Microsoft Teams MessageCard document for a
// deployment notification. The package is pure: it performs no network or
// process I/O and is fully testable with literal inputs.
package card

// Teams legacy MessageCard envelope constants.
const (
	messageCardType    = "MessageCard"
	messageCardContext = "http://schema.org/extensions"
	openURIActionType  = "OpenUri"
)

// MessageCard is the outbound webhook document.
// Field names follow the Teams connector card schema.
type MessageCard struct {
	Type            string    `json:"@type"`
	Context         string    `json:"@context"`
	ThemeColor      string    `json:"themeColor"`
	Summary         string    `json:"summary"`
	Sections        []Section `json:"sections"`
	PotentialAction []Action  `json:"potentialAction"`
}

// Section is a content block of the card.
type Section struct {
	ActivityTitle    string `json:"activityTitle"`
	ActivitySubtitle string `json:"activitySubtitle"`
	Text             string `json:"text,omitempty"`
	Facts            []Fact `json:"facts,omitempty"`
	Markdown         bool   `json:"markdown"`
}

// Fact is a name/value row in a section's fact list.
type Fact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Action is an OpenUri button at the bottom of the card.
type Action struct {
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	Targets []Target `json:"targets"`
}

// Target is a per-OS URI for an action. Teams requires os to be "default".
type Target struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}

// openURI creates an OpenUri action with a single default target.
func openURI(name, uri string) Action {
	return Action{
		Type: openURIActionType,
		Name: name,
		Targets: []Target{
			{OS: "default", URI: uri},
		},
	}
}

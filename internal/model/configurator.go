package model

import "mangal/internal/configurator"

// ConfiguratorResponse is the result screen payload
type ConfiguratorResponse struct {
	Title           string              `json:"title"`
	Gallery         Gallery             `json:"gallery"`
	Solution        Solution            `json:"solution"`
	Result          configurator.Result `json:"result"`
	SimilarProjects []SimilarProject    `json:"similarProjects"`
	Actions         ResultActions       `json:"actions"`
}

// Gallery lists the result images
type Gallery struct {
	Images     []string `json:"images"`
	MainImage  string   `json:"mainImage"`
	Thumbnails []string `json:"thumbnails"`
}

// Solution is the human-facing summary of a configuration
type Solution struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Features       []string       `json:"features"`
	Materials      []string       `json:"materials"`
	Dimensions     string         `json:"dimensions"`
	EstimatedPrice EstimatedPrice `json:"estimatedPrice"`
}

// EstimatedPrice is a price range in rubles with a disclaimer
type EstimatedPrice struct {
	Min  int64  `json:"min"`
	Max  int64  `json:"max"`
	Note string `json:"note"`
}

// ResultActions are the calls to action under the result
type ResultActions struct {
	Primary   Action `json:"primary"`
	Secondary Action `json:"secondary"`
	Tertiary  Action `json:"tertiary"`
}

// Action is a button label and the client action it triggers
type Action struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// QuizRequest applies one reducer action to a quiz state
type QuizRequest struct {
	State  *configurator.QuizState `json:"state"`
	Action configurator.Action     `json:"action"`
}

// QuizResponse is the new quiz state with derived flags
type QuizResponse struct {
	State       configurator.QuizState `json:"state"`
	CanGoNext   bool                   `json:"canGoNext"`
	CanGoBack   bool                   `json:"canGoBack"`
	IsCompleted bool                   `json:"isCompleted"`
	Progress    int                    `json:"progress"`
}

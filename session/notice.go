package session

import (
	"fmt"

	"github.com/etnz/stockavg"
)

// Notice is a short message for the user after an action.
type Notice struct {
	Title       string
	Description string
	Destructive bool // failure notices are shown as such
}

func (n Notice) String() string { return n.Title + ": " + n.Description }

// Action names the user action a failure notice is about.
type Action int

const (
	Calculating Action = iota
	Removing
	Downloading
	Emailing
)

// NoticeFor returns the notice describing err raised while doing a.
func NoticeFor(a Action, err error) Notice {
	switch stockavg.KindOf(err) {
	case stockavg.KindMissingLabel:
		return Notice{"Stock Name Required", "Please enter a stock name before calculating.", true}
	case stockavg.KindInvalidEntry:
		return Notice{"Invalid Input", "All quantities and prices must be greater than zero.", true}
	case stockavg.KindCannotRemove:
		return Notice{"Cannot Remove", "You need at least two stock purchases for comparison.", true}
	case stockavg.KindInvalidEmailFormat:
		return Notice{"Invalid Email", "Please enter a valid email address.", true}
	case stockavg.KindInvariant:
		return Notice{"Calculation Failed", "The average could not be computed from these purchases.", true}
	}
	switch a {
	case Downloading:
		return Notice{"Download Failed", "Your report could not be saved.", true}
	case Emailing:
		return Notice{"Email Failed", "Your report could not be sent.", true}
	default:
		return Notice{"Error", err.Error(), true}
	}
}

func noResults(a Action) Notice {
	what := "downloading"
	if a == Emailing {
		what = "sending email"
	}
	return Notice{"No Results", fmt.Sprintf("Please calculate results before %s.", what), true}
}

package bot

import "strings"

// Control is one interactive element of the ban-list view. The set is closed:
// custom ids outside it are ignored by the dispatcher.
type Control string

const (
	ControlPrev    Control = "prev"
	ControlNext    Control = "next"
	ControlPage    Control = "page"
	ControlManage  Control = "manage"
	ControlClose   Control = "close"
	ControlSelect  Control = "select"
	ControlUnban   Control = "unban"
	ControlTempBan Control = "tempban"
	ControlPermBan Control = "permban"
	ControlCancel  Control = "cancel"
	ControlModal   Control = "modal"
	controlPrefix          = "banlist:"
)

func (c Control) customID() string { return controlPrefix + string(c) }

// ParseControl splits a component custom id into its control tag and an
// optional argument ("banlist:modal:<messageID>" carries the message id).
func ParseControl(customID string) (Control, string, bool) {
	if !strings.HasPrefix(customID, controlPrefix) {
		return "", "", false
	}
	rest := customID[len(controlPrefix):]
	tag, arg, _ := strings.Cut(rest, ":")
	switch c := Control(tag); c {
	case ControlPrev, ControlNext, ControlPage, ControlManage, ControlClose,
		ControlSelect, ControlUnban, ControlTempBan, ControlPermBan, ControlCancel, ControlModal:
		return c, arg, true
	}
	return "", "", false
}

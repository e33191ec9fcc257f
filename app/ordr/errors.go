package ordr

import "fmt"

// DomainError is a rejection from the render service itself, e.g. an
// invalid replay or an unsupported mode. It maps to a human-readable
// message and is surfaced to the user directly, not logged as a fault.
type DomainError struct {
	Code int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("ordr: render rejected with code %d", e.Code)
}

// Message returns the user-facing text for the error code. Unknown codes
// are surfaced as the raw code.
func (e *DomainError) Message() string {
	if msg, ok := errorMessages[e.Code]; ok {
		return msg
	}
	return fmt.Sprintf("The render service rejected the replay (error code %d).", e.Code)
}

// errorMessages maps o!rdr error codes to user-facing messages.
var errorMessages = map[int]string{
	2:  "The render service is temporarily stopped for maintenance. Try again later.",
	5:  "The replay file could not be downloaded by the render service.",
	6:  "That replay file is corrupted or not a valid .osr file.",
	7:  "That replay contains no input data, so there is nothing to render.",
	8:  "The beatmap for that replay does not exist on osu! anymore.",
	9:  "The audio for that beatmap is unavailable, so it cannot be rendered.",
	10: "The render service cannot reach the osu! API right now. Try again later.",
	11: "Auto-mod replays are not supported by the render service.",
	12: "That game mode is not supported; only osu!standard replays can be rendered.",
	13: "Replays with custom difficulty mods cannot be rendered.",
	14: "The beatmap is longer than the render service allows (15 minutes).",
	15: "This replay is already being rendered, be patient!",
	16: "The player in that replay is banned from the render service.",
	17: "This IP has been banned from the render service.",
	18: "This username has been banned from the render service.",
	23: "The render service hit an internal problem. Try again later.",
	24: "The beatmap could not be found on any mirror, so it cannot be rendered.",
	25: "The replay author's name contains unsupported characters.",
	26: "The render servers are overloaded right now. Try again in a few minutes.",
	29: "Only ranked, approved and loved beatmaps can be rendered.",
	30: "That replay has mods the render service cannot handle yet.",
	31: "The replay could not be parsed; it may be from an unsupported client.",
}

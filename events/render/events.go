// Package renderevents defines the topics and payloads flowing between the
// notification channel and the render correlator.
package renderevents

// Topics.
const (
	// RenderFinished carries completion events read off the o!rdr
	// websocket, one message per finished render.
	RenderFinished = "render.finished"
)

// RenderFinishedPayload is the completion event for a single render. Either
// VideoURL is set (success) or ErrorCode/ErrorMessage describe the failure.
type RenderFinishedPayload struct {
	RenderID     int64  `json:"renderID"`
	VideoURL     string `json:"videoUrl"`
	ErrorCode    int    `json:"errorCode,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

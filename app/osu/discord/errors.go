package osudiscord

import (
	"errors"

	"github.com/SawshaDev/Aswo/app/osuapi"
	"github.com/SawshaDev/Aswo/app/shared/apperrors"
)

// userFacingError converts a client error into the short message shown to
// the invoking user. Protocol details stay in the logs.
func userFacingError(err error) string {
	var notFound *osuapi.NotFoundError
	if errors.As(err, &notFound) {
		return "I couldn't find that on osu!. Double-check the name or id."
	}

	var transport *apperrors.TransportError
	if errors.As(err, &transport) {
		return "I couldn't reach osu! right now. Try again in a moment."
	}

	return "Something went wrong talking to osu!. Try again later."
}

package save

// State is the contract the surrounding simulation's state object satisfies.
// The store never interprets the bytes; it only moves them through the
// compress/encrypt/write pipeline and back.
type State interface {
	// MarshalState renders the snapshot as a flat byte sequence. The
	// encoding is the simulation's business; it only has to round-trip
	// through UnmarshalState on the matching Codec.
	MarshalState() ([]byte, error)

	// Summary extracts the handful of display fields the slot picker
	// shows without decrypting anything.
	Summary() Summary
}

// Codec reconstructs a State from bytes previously produced by
// MarshalState. Decode failures surface as common.ErrFormat through Load.
type Codec interface {
	Decode(data []byte) (State, error)
}

// Summary is the display-only view of a state captured at save time. It is
// embedded in the plaintext meta entry and must never feed back into game
// logic.
type Summary struct {
	DisplayName   string
	Day           int
	MilesTraveled int
	PartySize     int
}

// RawState carries undecoded bytes. Together with RawCodec it lets tools
// exercise the full read path (decrypt, verify, inflate) without knowing
// the simulation's encoding.
type RawState struct {
	Data []byte
}

func (s *RawState) MarshalState() ([]byte, error) { return s.Data, nil }
func (s *RawState) Summary() Summary              { return Summary{} }

// RawCodec is the passthrough codec for RawState.
type RawCodec struct{}

func (RawCodec) Decode(data []byte) (State, error) {
	return &RawState{Data: data}, nil
}

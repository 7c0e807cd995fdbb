package densestr

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error

	// Core Deterministic Encoding: equal sequences encode to equal bytes.
	if cborEnc, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic("densestr: CBOR encoder initialization failed: " + err.Error())
	}

	cborDec, err = cbor.DecOptions{
		UTF8: cbor.UTF8RejectInvalid,
	}.DecMode()
	if err != nil {
		panic("densestr: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalJSON implements json.Marshaler. Sequences are encoded as
// arrays of strings.
func (s *Strings) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.views())
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null decodes into an
// empty sequence.
func (s *Strings) UnmarshalJSON(data []byte) error {
	var vv []string
	if err := json.Unmarshal(data, &vv); err != nil {
		return fmt.Errorf("densestr: invalid JSON: %w", err)
	}
	*s = *New(vv)
	return nil
}

// MarshalCBOR implements cbor.Marshaler. Sequences are encoded as arrays
// of text strings.
func (s *Strings) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(s.views())
}

// UnmarshalCBOR implements cbor.Unmarshaler. Text strings must be valid
// UTF-8.
func (s *Strings) UnmarshalCBOR(data []byte) error {
	var vv []string
	if err := cborDec.Unmarshal(data, &vv); err != nil {
		return fmt.Errorf("densestr: invalid CBOR: %w", err)
	}
	*s = *New(vv)
	return nil
}

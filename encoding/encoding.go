// Package encoding offers schema-less (de)serialization APIs for DLEQ
// instances and proofs, using CBOR. The encoding is prefixed with the curve
// identifier so that objects serialized over one curve cannot be silently
// deserialized over another.
package encoding

import (
	"errors"
	"io"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/fxamacker/cbor/v2"
)

var errInvalidCurve = errors.New("trying to deserialize an object serialized with another curve")

// Write serializes object into a file at path.
func Write(path string, from interface{}, curveID ecc.ID) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Serialize(f, from, curveID)
}

// Read reads and deserializes the file at path into the provided object.
// into must be a pointer.
func Read(path string, into interface{}, expectedCurveID ecc.ID) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Deserialize(f, into, expectedCurveID)
}

// Serialize encodes from into the provided writer, the curve identifier in
// the first bytes.
func Serialize(writer io.Writer, from interface{}, curveID ecc.ID) error {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return err
	}
	encoder := em.NewEncoder(writer)

	// encode the curve type in the first bytes
	if err := encoder.Encode(curveID); err != nil {
		return err
	}

	return encoder.Encode(from)
}

// PeekCurveID reads the first bytes of the file and tries to decode and
// return the curve identifier.
func PeekCurveID(path string) (ecc.ID, error) {
	reader, err := os.Open(path)
	if err != nil {
		return ecc.UNKNOWN, err
	}
	defer reader.Close()

	decoder := cbor.NewDecoder(reader)

	var curveID ecc.ID
	if err := decoder.Decode(&curveID); err != nil {
		return ecc.UNKNOWN, err
	}
	return curveID, nil
}

// Deserialize reads bytes from reader and constructs the object into,
// ensuring first that it was serialized with the expected curve.
func Deserialize(reader io.Reader, into interface{}, expectedCurveID ecc.ID) error {
	decoder := cbor.NewDecoder(reader)

	var curveID ecc.ID
	if err := decoder.Decode(&curveID); err != nil {
		return err
	}
	if curveID != expectedCurveID {
		return errInvalidCurve
	}

	return decoder.Decode(into)
}

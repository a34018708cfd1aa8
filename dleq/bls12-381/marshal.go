package bls12381

import (
	"io"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// WriteTo writes the binary encoding of the proof (c ∥ s) to w.
func (proof *Proof) WriteTo(w io.Writer) (int64, error) {
	enc := curve.NewEncoder(w)

	toEncode := []interface{}{
		&proof.C,
		&proof.S,
	}

	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}

	return enc.BytesWritten(), nil
}

// ReadFrom reads the binary encoding of a proof from r. Scalars that are not
// canonical field elements are rejected.
func (proof *Proof) ReadFrom(r io.Reader) (int64, error) {
	dec := curve.NewDecoder(r)

	toDecode := []interface{}{
		&proof.C,
		&proof.S,
	}

	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}

	return dec.BytesRead(), nil
}

// WriteTo writes the binary encoding of the instance (g ∥ h ∥ g_x ∥ h_x),
// points in compressed form, to w.
func (instance *Instance) WriteTo(w io.Writer) (int64, error) {
	enc := curve.NewEncoder(w)

	toEncode := []interface{}{
		&instance.G,
		&instance.H,
		&instance.GX,
		&instance.HX,
	}

	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}

	return enc.BytesWritten(), nil
}

// ReadFrom reads the binary encoding of an instance from r. Points are
// checked to be on the curve and in the correct subgroup.
func (instance *Instance) ReadFrom(r io.Reader) (int64, error) {
	dec := curve.NewDecoder(r)

	toDecode := []interface{}{
		&instance.G,
		&instance.H,
		&instance.GX,
		&instance.HX,
	}

	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}

	return dec.BytesRead(), nil
}

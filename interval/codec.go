package interval

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"unsafe"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/constraints"
)

// Binary layout, version 1:
//
//	"IV" | version (1 byte) | width (1 byte, bytes per element)
//	     | varint from | varint to | varint step
//	     | blake2b-128 of everything before it (16 bytes)
//
// Varints use encoding/binary's zig-zag signed form.
const (
	codecVersion = 1
	checksumSize = 16
)

var codecMagic = []byte("IV")

func width[T any]() byte {
	var zero T
	return byte(unsafe.Sizeof(zero))
}

func checksum(b []byte) []byte {
	h, err := blake2b.New(checksumSize, nil)
	if err != nil {
		// Only reachable with an invalid size or key.
		panic(err)
	}
	h.Write(b)
	return h.Sum(nil)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (iv Interval[T]) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 4+3*binary.MaxVarintLen64+checksumSize)
	buf = append(buf, codecMagic...)
	buf = append(buf, codecVersion, width[T]())
	buf = binary.AppendVarint(buf, int64(iv.from))
	buf = binary.AppendVarint(buf, int64(iv.to))
	buf = binary.AppendVarint(buf, int64(iv.step))
	return append(buf, checksum(buf)...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (iv *Interval[T]) UnmarshalBinary(data []byte) error {
	if len(data) < len(codecMagic)+2+3+checksumSize {
		return fmt.Errorf("%w: %d bytes is too short", ErrCorruptEncoding, len(data))
	}
	body, sum := data[:len(data)-checksumSize], data[len(data)-checksumSize:]
	if !bytes.Equal(checksum(body), sum) {
		return fmt.Errorf("%w: checksum mismatch", ErrCorruptEncoding)
	}
	if !bytes.HasPrefix(body, codecMagic) {
		return fmt.Errorf("%w: bad magic %q", ErrCorruptEncoding, body[:len(codecMagic)])
	}
	body = body[len(codecMagic):]
	if body[0] != codecVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptEncoding, body[0])
	}
	if w := width[T](); body[1] != w {
		return fmt.Errorf("%w: element width %d, want %d", ErrCorruptEncoding, body[1], w)
	}
	body = body[2:]

	var fields [3]T
	for i := range fields {
		v, n := binary.Varint(body)
		if n <= 0 {
			return fmt.Errorf("%w: bad varint at field %d", ErrCorruptEncoding, i)
		}
		if int64(T(v)) != v {
			return fmt.Errorf("%w: %d overflows element type", ErrCorruptEncoding, v)
		}
		fields[i] = T(v)
		body = body[n:]
	}
	if len(body) != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorruptEncoding, len(body))
	}
	decoded, err := decode(fields[0], fields[1], fields[2])
	if err != nil {
		return err
	}
	*iv = decoded
	return nil
}

type jsonInterval struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
	Step int64 `json:"step"`
}

// MarshalJSON encodes the interval as {"from":..,"to":..,"step":..}.
func (iv Interval[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonInterval{From: int64(iv.from), To: int64(iv.to), Step: int64(iv.step)})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (iv *Interval[T]) UnmarshalJSON(data []byte) error {
	var j jsonInterval
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptEncoding, err)
	}
	for _, v := range []int64{j.From, j.To, j.Step} {
		if int64(T(v)) != v {
			return fmt.Errorf("%w: %d overflows element type", ErrCorruptEncoding, v)
		}
	}
	decoded, err := decode(T(j.From), T(j.To), T(j.Step))
	if err != nil {
		return err
	}
	*iv = decoded
	return nil
}

// decode validates decoded fields. Besides everything FromToBy accepts, it
// admits the empty intervals produced by Take, Drop and the parity
// constructors, whose bounds overshoot by at most one step.
func decode[T constraints.Signed](from, to, step T) (Interval[T], error) {
	iv, err := FromToBy(from, to, step)
	if err == nil {
		return iv, nil
	}
	if step != 0 {
		dist := uint64(int64(to) - int64(from))
		if to < from {
			dist = uint64(int64(from) - int64(to))
		}
		stride := uint64(int64(step))
		if step < 0 {
			stride = uint64(-int64(step))
		}
		if dist <= stride {
			return Interval[T]{from: from, to: to, step: step}, nil
		}
	}
	return Interval[T]{}, fmt.Errorf("%w: %w", ErrCorruptEncoding, err)
}

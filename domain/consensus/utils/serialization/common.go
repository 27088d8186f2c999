package serialization

import (
	"encoding/binary"
	"io"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// errNoEncodingForType signifies that there's no encoding for the given type.
var errNoEncodingForType = errors.New("there's no encoding for this type")

var errMalformed = errors.New("errMalformed")

// MaxVarBytesLength is the largest byte slice ReadVarBytes is willing to
// allocate. It protects against malformed length prefixes.
const MaxVarBytesLength = 1 << 24

// WriteElement writes the little endian representation of element to w.
func WriteElement(w io.Writer, element interface{}) error {
	// Attempt to write the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case uint8:
		return writeFull(w, []byte{e})

	case uint16:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], e)
		return writeFull(w, buf[:])

	case uint32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], e)
		return writeFull(w, buf[:])

	case int64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(e))
		return writeFull(w, buf[:])

	case uint64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], e)
		return writeFull(w, buf[:])

	case bool:
		if e {
			return writeFull(w, []byte{0x01})
		}
		return writeFull(w, []byte{0x00})

	case externalapi.DomainHash:
		return writeFull(w, e.ByteSlice())

	case *externalapi.DomainHash:
		return writeFull(w, e.ByteSlice())

	case externalapi.DomainTransactionID:
		return writeFull(w, e.ByteSlice())

	case *externalapi.DomainTransactionID:
		return writeFull(w, e.ByteSlice())
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to write type %T", element)
}

// WriteElements writes multiple items to w. It is equivalent to multiple
// calls to WriteElement.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := WriteElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteVarBytes writes a length-prefixed byte slice to w.
func WriteVarBytes(w io.Writer, bytes []byte) error {
	err := WriteElement(w, uint64(len(bytes)))
	if err != nil {
		return err
	}
	return writeFull(w, bytes)
}

// ReadElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func ReadElement(r io.Reader, element interface{}) error {
	// Attempt to read the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case *uint8:
		var buf [1]byte
		if err := readFull(r, buf[:]); err != nil {
			return err
		}
		*e = buf[0]
		return nil

	case *uint16:
		var buf [2]byte
		if err := readFull(r, buf[:]); err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint16(buf[:])
		return nil

	case *uint32:
		var buf [4]byte
		if err := readFull(r, buf[:]); err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint32(buf[:])
		return nil

	case *int64:
		var buf [8]byte
		if err := readFull(r, buf[:]); err != nil {
			return err
		}
		*e = int64(binary.LittleEndian.Uint64(buf[:]))
		return nil

	case *uint64:
		var buf [8]byte
		if err := readFull(r, buf[:]); err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint64(buf[:])
		return nil

	case *bool:
		var buf [1]byte
		if err := readFull(r, buf[:]); err != nil {
			return err
		}
		switch buf[0] {
		case 0x00:
			*e = false
		case 0x01:
			*e = true
		default:
			return errors.Wrapf(errMalformed, "in order to keep serialization canonical, true has to"+
				" always be 0x01")
		}
		return nil

	case *externalapi.DomainHash:
		var buf [externalapi.DomainHashSize]byte
		if err := readFull(r, buf[:]); err != nil {
			return err
		}
		*e = *externalapi.NewDomainHashFromByteArray(&buf)
		return nil

	case *externalapi.DomainTransactionID:
		var buf [externalapi.DomainHashSize]byte
		if err := readFull(r, buf[:]); err != nil {
			return err
		}
		*e = *externalapi.NewDomainTransactionIDFromByteArray(&buf)
		return nil
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to read type %T", element)
}

// ReadElements reads multiple items from r. It is equivalent to multiple
// calls to ReadElement.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := ReadElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadVarBytes reads a length-prefixed byte slice written by WriteVarBytes.
func ReadVarBytes(r io.Reader) ([]byte, error) {
	var length uint64
	err := ReadElement(r, &length)
	if err != nil {
		return nil, err
	}
	if length > MaxVarBytesLength {
		return nil, errors.Wrapf(errMalformed, "byte slice length %d is larger than the max allowed %d",
			length, MaxVarBytesLength)
	}
	bytes := make([]byte, length)
	err = readFull(r, bytes)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

// IsMalformedError returns whether the error indicates a malformed data source
func IsMalformedError(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) || errors.Is(err, errMalformed)
}

func writeFull(w io.Writer, bytes []byte) error {
	_, err := w.Write(bytes)
	return errors.WithStack(err)
}

func readFull(r io.Reader, bytes []byte) error {
	_, err := io.ReadFull(r, bytes)
	return errors.WithStack(err)
}

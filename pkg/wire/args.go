package wire

// ArgKind tags the wire representation an Arg should be encoded with.
type ArgKind int

const (
	KindUint ArgKind = iota
	KindInt
	KindFixed
	KindObject
	KindNewID
	KindString
	KindArray
)

// Arg is a single typed outbound argument. Construct with the Uint,
// Int, Fixed, ObjectArg, NewID, Str, or RawArray helpers rather than
// the struct literal.
type Arg struct {
	kind ArgKind
	u    uint32
	s    string
	b    []byte
}

func Uint(v uint32) Arg      { return Arg{kind: KindUint, u: v} }
func Int(v int32) Arg        { return Arg{kind: KindInt, u: uint32(v)} }
func Fixed(v int32) Arg      { return Arg{kind: KindFixed, u: uint32(v)} }
func ObjectArg(v uint32) Arg { return Arg{kind: KindObject, u: v} }
func NewID(v uint32) Arg     { return Arg{kind: KindNewID, u: v} }
func Str(v string) Arg       { return Arg{kind: KindString, s: v} }
func RawArray(v []byte) Arg  { return Arg{kind: KindArray, b: v} }

func (a Arg) encode() []byte {
	switch a.kind {
	case KindUint, KindInt, KindFixed, KindObject, KindNewID:
		b := make([]byte, 4)
		le.PutUint32(b, a.u)
		return b
	case KindString:
		return encodeString(a.s)
	case KindArray:
		return encodeArray(a.b)
	default:
		return nil
	}
}

// encodeString: u32 byte-length (including trailing NUL), bytes, pad to 4.
func encodeString(s string) []byte {
	raw := append([]byte(s), 0)
	length := len(raw)
	padded := (length + 3) &^ 3

	buf := make([]byte, 4+padded)
	le.PutUint32(buf[0:4], uint32(length))
	copy(buf[4:], raw)
	return buf
}

// encodeArray: u32 length, bytes, pad to 4. No trailing NUL.
func encodeArray(v []byte) []byte {
	length := len(v)
	padded := (length + 3) &^ 3

	buf := make([]byte, 4+padded)
	le.PutUint32(buf[0:4], uint32(length))
	copy(buf[4:], v)
	return buf
}

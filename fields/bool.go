// Copyright (c) 2025 Visvasity LLC

package fields

// Bool is a single byte boolean. Only 0 and 1 are valid encodings, so reads
// are fallible; writes are not.
type Bool struct {
	Meta
}

func NewBool(name string, offset int, endian Endian) Bool {
	return Bool{NewMeta(name, offset, 1, endian)}
}

func (f Bool) TryRead(data []byte) (bool, error) {
	switch b := f.span(data)[0]; b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, invalidValue(f, b, nil)
	}
}

func (f Bool) TryWrite(data []byte, x bool) error {
	f.Write(data, x)
	return nil
}

func (f Bool) Write(data []byte, x bool) {
	b := f.span(data)
	if x {
		b[0] = 1
	} else {
		b[0] = 0
	}
}

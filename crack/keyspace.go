package crack

import "errors"

// ErrEmptyKeyspace is returned when there are no keys to try.
var ErrEmptyKeyspace = errors.New("keyspace is empty")

// Keyspace is the cipher-character set tried during brute force. Keys are
// tried in slice order and the earliest key wins a tied score.
type Keyspace []byte

func byteRange(lo, hi int) Keyspace {
	ks := make(Keyspace, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		ks = append(ks, byte(i))
	}
	return ks
}

// Printable is every printable ASCII character, space through '~'.
func Printable() Keyspace {
	return byteRange(0x20, 0x7e)
}

// Lowercase is 'a' through 'z'.
func Lowercase() Keyspace {
	return byteRange('a', 'z')
}

// Alphanumeric is '0'-'9', 'A'-'Z' then 'a'-'z'.
func Alphanumeric() Keyspace {
	ks := byteRange('0', '9')
	ks = append(ks, byteRange('A', 'Z')...)
	return append(ks, byteRange('a', 'z')...)
}

// Full is every byte value.
func Full() Keyspace {
	return byteRange(0, 0xff)
}

// ParseKeyspace resolves one of the named sets "printable", "lower", "alnum"
// or "full". Any other value is taken literally as the set of key
// characters, with duplicates dropped.
func ParseKeyspace(name string) (Keyspace, error) {
	switch name {
	case "printable":
		return Printable(), nil
	case "lower":
		return Lowercase(), nil
	case "alnum":
		return Alphanumeric(), nil
	case "full":
		return Full(), nil
	}
	var (
		seen [256]bool
		ks   Keyspace
	)
	for i := 0; i < len(name); i++ {
		if seen[name[i]] {
			continue
		}
		seen[name[i]] = true
		ks = append(ks, name[i])
	}
	if len(ks) == 0 {
		return nil, ErrEmptyKeyspace
	}
	return ks, nil
}

package cuckoo

import "github.com/pkg/errors"

// Status is the result of a filter operation.
type Status int

const (
	// Ok indicates the operation completed as requested: the item was
	// added, found, or deleted.
	Ok Status = iota
	// NotFound indicates Contain/Delete found no matching fingerprint in
	// any candidate slot or the victim.
	NotFound
	// NotEnoughSpace indicates Add was rejected because the victim slot
	// was already occupied on entry.
	NotEnoughSpace
	// NotSupported indicates a misconfiguration detected at construction
	// (an unsupported d or bits-per-tag/table-kind combination).
	NotSupported
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case NotFound:
		return "NotFound"
	case NotEnoughSpace:
		return "NotEnoughSpace"
	case NotSupported:
		return "NotSupported"
	default:
		return "Unknown"
	}
}

// ErrUnsupportedD is returned by NewFilter when Config.D is outside {2..5}.
var ErrUnsupportedD = errors.New("cuckoo: d must be one of 2, 3, 4, 5")

// ErrUnsupportedBitsPerTag is returned when a table variant can't pack the
// requested fingerprint width.
var ErrUnsupportedBitsPerTag = errors.New("cuckoo: bits-per-tag is not supported by the requested table kind")

// ErrUnsupportedTableKind is returned for an unrecognized TableKind value.
var ErrUnsupportedTableKind = errors.New("cuckoo: unrecognized table kind")

package cuckoo

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TableKind selects the bucket-storage variant a Filter uses to hold its
// fingerprints.
type TableKind int

const (
	// TableSingle packs one fingerprint per bucket into ceil(f/8) bytes.
	// This is the production-intent variant.
	TableSingle TableKind = iota
	// TableMock stores each fingerprint in a full 32-bit word, trading
	// space for simplicity. Used to isolate the effect of fingerprint
	// size on load factor.
	TableMock
	// TablePacked stores a (tag, mark) pair per bucket and undersizes the
	// table below the power-of-d bucket count, trading space for a
	// richer candidate set via the mark-rotation kickout rule.
	TablePacked
)

func (k TableKind) String() string {
	switch k {
	case TableSingle:
		return "single"
	case TableMock:
		return "mock"
	case TablePacked:
		return "packed"
	default:
		return "unknown"
	}
}

// MarshalYAML implements yaml.Marshaler so a Config round-trips to its
// on-disk representation as "single"/"mock"/"packed" rather than a bare int.
func (k TableKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting the same table_kind
// strings as cmd/daryfilter's DARYFILTER_TABLE_KIND environment override.
func (k *TableKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	kind, err := ParseTableKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseTableKind maps a table_kind string (as used in YAML config files and
// environment variable overrides) to a TableKind.
func ParseTableKind(s string) (TableKind, error) {
	switch s {
	case "single", "":
		return TableSingle, nil
	case "mock":
		return TableMock, nil
	case "packed":
		return TablePacked, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedTableKind, "table_kind=%q", s)
	}
}

// Config captures the construction-time parameters of a Filter: target
// capacity, fanout, fingerprint width, and table storage variant. It is the
// shape cmd/daryfilter loads from a YAML file and environment variables.
type Config struct {
	// MaxKeys is the requested capacity.
	MaxKeys uint64 `yaml:"max_keys"`
	// D is the number of candidate buckets per element, in {2,3,4,5}.
	D uint64 `yaml:"d"`
	// BitsPerTag is the fingerprint width in bits. 8, 16, or 32 for
	// TableSingle; 1 through 32 for TableMock and TablePacked.
	BitsPerTag uint64 `yaml:"bits_per_tag"`
	// Kind selects the table storage variant.
	Kind TableKind `yaml:"table_kind"`
}

// DefaultConfig returns a commonly-used baseline configuration: d=3,
// 8-bit tags, SingleTable.
func DefaultConfig(maxKeys uint64) Config {
	return Config{
		MaxKeys:    maxKeys,
		D:          3,
		BitsPerTag: 8,
		Kind:       TableSingle,
	}
}

// LoadConfigFile reads a Config from a YAML file on disk. Missing fields
// keep the values of DefaultConfig(0): d=3, 8-bit tags, TableSingle, and a
// MaxKeys of 0.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config file %s", path)
	}
	cfg := DefaultConfig(0)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}

// validate checks the configuration against the constraints each table
// variant can actually serve, returning ErrUnsupportedD, ErrUnsupportedBitsPerTag,
// or ErrUnsupportedTableKind (the error counterparts of Status NotSupported;
// NewFilter returns them as errors, not as a Status).
func (c Config) validate() error {
	if c.D < 2 || c.D > 5 {
		return errors.Wrapf(ErrUnsupportedD, "d=%d", c.D)
	}
	switch c.Kind {
	case TableSingle:
		switch c.BitsPerTag {
		case 8, 16, 32:
		default:
			return errors.Wrapf(ErrUnsupportedBitsPerTag, "single table: bits_per_tag=%d", c.BitsPerTag)
		}
	case TableMock, TablePacked:
		if c.BitsPerTag == 0 || c.BitsPerTag > 32 {
			return errors.Wrapf(ErrUnsupportedBitsPerTag, "%s table: bits_per_tag=%d", c.Kind, c.BitsPerTag)
		}
	default:
		return errors.Wrapf(ErrUnsupportedTableKind, "table_kind=%d", c.Kind)
	}
	return nil
}

package basic

import "github.com/pkg/errors"

// ArchiveVersion is the little-endian u32 version tag that precedes every
// serialized record, per §6 of the spec.
type ArchiveVersion uint32

// ErrUnknownVersion is returned when a record's version tag has no
// registered migration path to the current version.
var ErrUnknownVersion = errors.New("basic: unknown archive version")

// MigrateFunc upgrades a raw record payload written at version `from` into
// the payload shape expected by version `from+1`. Migration tables only
// ever need to bridge adjacent versions; VersionTable.Upgrade walks the
// chain from the stored version to Current.
type MigrateFunc func(payload []byte) ([]byte, error)

// VersionTable is a {version -> migration} table as described in §4.A and
// the Design Notes' "legacy serialized-format tags" open question: geode
// freezes the tag set as Current and supplies migrations from Current-1
// forward, exactly as the spec recommends.
type VersionTable struct {
	Current    ArchiveVersion
	migrations map[ArchiveVersion]MigrateFunc // migrations[v] upgrades v -> v+1
}

// NewVersionTable creates a table whose current (latest) version is
// `current`. Register older-version migrations with Register.
func NewVersionTable(current ArchiveVersion) *VersionTable {
	return &VersionTable{Current: current, migrations: make(map[ArchiveVersion]MigrateFunc)}
}

// Register installs the migration that upgrades payloads written at
// version `from` to version `from+1`.
func (t *VersionTable) Register(from ArchiveVersion, fn MigrateFunc) {
	t.migrations[from] = fn
}

// Upgrade walks payload from its stored version to t.Current, applying
// each registered migration in turn. A payload already at t.Current is
// returned unchanged. A gap in the migration chain is reported as
// ErrUnknownVersion rather than silently truncating the upgrade.
func (t *VersionTable) Upgrade(stored ArchiveVersion, payload []byte) ([]byte, error) {
	if stored > t.Current {
		return nil, errors.Wrapf(ErrUnknownVersion, "record version %d newer than supported %d", stored, t.Current)
	}
	v := stored
	for v < t.Current {
		migrate, ok := t.migrations[v]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownVersion, "no migration registered from version %d", v)
		}
		upgraded, err := migrate(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "migrating from version %d", v)
		}
		payload = upgraded
		v++
	}
	return payload, nil
}

package common

// CompilerVersion is the current compiler version string.
const CompilerVersion string = "0.1.0"

// ProfileFileSuffix names the optional per-source TOML sidecar carrying
// default pipeline flags: `foo.cnf` pairs with `foo.profile.toml`.
const ProfileFileSuffix string = ".profile.toml"

// ReservedSlots is the number of machine-word slots reserved at the front
// of every object instance for the vtable pointer (slot 0) and the ftable
// pointer (slot 1), before any user field begins.
const ReservedSlots = 2

// WordSize is the size, in bytes, of a single machine word: the unit in
// which object slots, table entries, and tagged values are measured.
const WordSize = 8

// MaxLocals is the largest number of locals a single method may declare.
const MaxLocals = 6

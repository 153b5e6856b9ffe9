package types

// Version is the canonical rangemap version.
// The CLI and the binary almanac header report this version.
const Version = "0.2.0"

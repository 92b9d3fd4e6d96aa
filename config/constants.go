package config

// Node-creation limits. These are a behavioral contract, not tuning knobs:
// changing them changes which create commands succeed.
const (
	// MAX_NODES is the maximum number of children a single directory can hold
	MAX_NODES = 1024

	// MAX_NAME_LENGTH is the maximum length of a node name in bytes
	MAX_NAME_LENGTH = 255

	// MAX_DEPTH is the maximum tree depth; the root counts as depth 1 and
	// a directory sitting at the cap may not gain children
	MAX_DEPTH = 255
)

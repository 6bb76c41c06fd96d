package uid

import (
	"github.com/bwmarrin/snowflake"
)

// Snowflake generates sortable int64 identifiers.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake returns a Snowflake generator for the given node id.
// node must be in [0, 1023].
func NewSnowflake(node int64) (*Snowflake, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: n}, nil
}

// Generate returns a new int64 id.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

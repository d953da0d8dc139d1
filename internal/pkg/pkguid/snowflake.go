package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
)

// DefaultSnowflakeEpoch is Mon Dec 01 2025 00:00:00.000 WIB in unix milliseconds.
const DefaultSnowflakeEpoch int64 = 1764522000000

// Snowflake generates numeric IDs using the Snowflake algorithm.
type Snowflake struct {
	node *snowflake.Node
}

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	err := binary.Read(rand.Reader, binary.BigEndian, &nodeID)
	if err != nil {
		return 0, err
	}

	return nodeID & (1<<10 - 1), nil // Limiting to 10 bits for node ID
}

// NewSnowflake constructs a Snowflake generator with a random node ID.
//
// The epoch (unix ms) is process wide in the snowflake package; a
// non-positive value keeps DefaultSnowflakeEpoch.
func NewSnowflake(epoch int64) (*Snowflake, error) {
	nodeID, err := generateRandomNodeID()
	if err != nil {
		return nil, err
	}

	if epoch <= 0 {
		epoch = DefaultSnowflakeEpoch
	}
	snowflake.Epoch = epoch

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique numeric ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

// ParseTime reads the millisecond timestamp from a base-10 snowflake ID.
func (s *Snowflake) ParseTime(id string) (time.Time, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	if n < 0 {
		return time.Time{}, fmt.Errorf("%w: snowflake ids are non-negative", ErrInvalidID)
	}
	return time.UnixMilli(snowflake.ParseInt64(n).Time()).UTC(), nil
}

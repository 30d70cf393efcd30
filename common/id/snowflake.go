// Package id hands out the int64 identifiers shared by organizations,
// projects, tasks and comments. Snowflake ids are time-ordered, so a
// descending id sort doubles as newest-first creation ordering.
package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Each process class claims its own node id so the server and the seeder
// can generate concurrently without collisions.
const (
	ServerNode int64 = 1
	SeederNode int64 = 2
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init binds the process to a Snowflake node. Call once at startup before
// any entity is created.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates the id for a new organization, project, task or comment.
func New() int64 {
	return node.Generate().Int64()
}
